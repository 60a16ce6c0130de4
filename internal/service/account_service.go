package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"campus-eats/internal/model"
	"campus-eats/internal/token"
	"campus-eats/pkg/apierror"
)

// AccountStore is the role-specific persistence adapter. Both the student and
// vendor repositories satisfy it, which is what lets a single AccountService
// serve both roles instead of two copy-pasted controllers.
type AccountStore interface {
	FindByID(ctx context.Context, id string) (model.Account, error)
	FindByEmail(ctx context.Context, email string) (model.Account, error)
	Create(ctx context.Context, a model.Account) error
}

// AuthResult is a successful register/login outcome: the public profile plus
// a freshly minted session token for the cookie.
type AuthResult struct {
	Profile model.Profile
	Token   string
}

type AccountService struct {
	role   model.Role
	store  AccountStore
	issuer *token.Issuer
}

func NewAccountService(role model.Role, store AccountStore, issuer *token.Issuer) *AccountService {
	return &AccountService{role: role, store: store, issuer: issuer}
}

func (s *AccountService) Role() model.Role {
	return s.role
}

// Register creates an account and logs it in. The contact number is required
// for students only. A duplicate email always fails, whether caught by the
// pre-check or by the unique index when two registers race.
func (s *AccountService) Register(ctx context.Context, req model.RegisterRequest) (AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	password := req.Password
	contact := strings.TrimSpace(req.ContactNumber)

	if name == "" || email == "" || password == "" {
		return AuthResult{}, apierror.BadRequest("Missing details")
	}
	if s.role == model.RoleStudent && contact == "" {
		return AuthResult{}, apierror.BadRequest("Missing details")
	}
	if s.role != model.RoleStudent {
		contact = ""
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return AuthResult{}, apierror.Conflict("User already exists")
	} else if !errors.Is(err, model.ErrAccountNotFound) {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return AuthResult{}, err
	}

	now := time.Now().UTC()
	account := model.Account{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		ContactNumber: contact,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.Create(ctx, account); err != nil {
		if errors.Is(err, model.ErrAccountAlreadyExists) {
			return AuthResult{}, apierror.Conflict("User already exists")
		}
		return AuthResult{}, err
	}

	return s.finishLogin(account)
}

// Login verifies credentials. Unknown email and wrong password produce the
// same response so the caller cannot probe which field was wrong.
func (s *AccountService) Login(ctx context.Context, req model.LoginRequest) (AuthResult, error) {
	email := strings.TrimSpace(req.Email)
	password := req.Password

	if email == "" || password == "" {
		return AuthResult{}, apierror.BadRequest("Email and password are required")
	}

	account, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return AuthResult{}, apierror.Unauthorized("Invalid email or password")
		}
		return AuthResult{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, apierror.Unauthorized("Invalid email or password")
	}

	return s.finishLogin(account)
}

// GetByID resolves the middleware-authenticated user id back to an account.
func (s *AccountService) GetByID(ctx context.Context, id string) (model.Account, error) {
	account, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.Account{}, apierror.NotFound("Account not found")
		}
		return model.Account{}, err
	}
	return account, nil
}

func (s *AccountService) finishLogin(account model.Account) (AuthResult, error) {
	raw, err := s.issuer.Issue(account.ID, s.role)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{Profile: account.Profile(), Token: raw}, nil
}
