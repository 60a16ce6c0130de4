package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campus-eats/internal/model"
)

const uniqueViolationCode = "23505"

// StudentRepository persists student accounts. Email uniqueness is enforced
// by the students_email_key index; a concurrent duplicate register loses the
// insert race and surfaces as ErrAccountAlreadyExists.
type StudentRepository struct {
	pool *pgxpool.Pool
}

func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

func (r *StudentRepository) FindByID(ctx context.Context, id string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, contact_number, created_at, updated_at
		 FROM students WHERE id = $1`, id).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.ContactNumber, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find student by id: %w", err)
	}
	return a, nil
}

func (r *StudentRepository) FindByEmail(ctx context.Context, email string) (model.Account, error) {
	var a model.Account
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, password_hash, contact_number, created_at, updated_at
		 FROM students WHERE lower(email) = lower($1)`, strings.TrimSpace(email)).
		Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.ContactNumber, &a.CreatedAt, &a.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Account{}, model.ErrAccountNotFound
	}
	if err != nil {
		return model.Account{}, fmt.Errorf("find student by email: %w", err)
	}
	return a, nil
}

func (r *StudentRepository) Create(ctx context.Context, a model.Account) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO students (id, name, email, password_hash, contact_number, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.Name, a.Email, a.PasswordHash, a.ContactNumber, a.CreatedAt, a.UpdatedAt)
	if isUniqueViolation(err) {
		return model.ErrAccountAlreadyExists
	}
	if err != nil {
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
