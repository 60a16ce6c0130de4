package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"campus-eats/internal/model"
)

// MenuRepository stores one menu row per vendor; Save is an upsert keyed on
// vendor_id, matching the create-or-update contract of the menu endpoint.
type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) Save(ctx context.Context, m model.Menu) error {
	items, err := json.Marshal(m.Items)
	if err != nil {
		return fmt.Errorf("encode menu items: %w", err)
	}

	_, err = r.pool.Exec(ctx,
		`INSERT INTO menus (vendor_id, vendor_email, vendor_name, items, updated_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (vendor_id) DO UPDATE
		 SET items = EXCLUDED.items, vendor_name = EXCLUDED.vendor_name, updated_at = EXCLUDED.updated_at`,
		m.VendorID, m.VendorEmail, m.VendorName, items, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("save menu: %w", err)
	}
	return nil
}

func (r *MenuRepository) FindByVendorID(ctx context.Context, vendorID string) (model.Menu, error) {
	return r.findOne(ctx,
		`SELECT vendor_id, vendor_email, vendor_name, items, updated_at
		 FROM menus WHERE vendor_id = $1`, vendorID)
}

func (r *MenuRepository) FindByVendorEmail(ctx context.Context, email string) (model.Menu, error) {
	return r.findOne(ctx,
		`SELECT vendor_id, vendor_email, vendor_name, items, updated_at
		 FROM menus WHERE lower(vendor_email) = lower($1)`, strings.TrimSpace(email))
}

func (r *MenuRepository) findOne(ctx context.Context, query string, arg any) (model.Menu, error) {
	var (
		m     model.Menu
		items []byte
	)
	err := r.pool.QueryRow(ctx, query, arg).
		Scan(&m.VendorID, &m.VendorEmail, &m.VendorName, &items, &m.UpdatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Menu{}, model.ErrMenuNotFound
	}
	if err != nil {
		return model.Menu{}, fmt.Errorf("find menu: %w", err)
	}

	if err := json.Unmarshal(items, &m.Items); err != nil {
		return model.Menu{}, fmt.Errorf("decode menu items: %w", err)
	}
	return m, nil
}

func (r *MenuRepository) DeleteByVendorID(ctx context.Context, vendorID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menus WHERE vendor_id = $1`, vendorID)
	if err != nil {
		return fmt.Errorf("delete menu: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMenuNotFound
	}
	return nil
}

// ListVendors returns the distinct vendors that currently have a menu.
func (r *MenuRepository) ListVendors(ctx context.Context) ([]model.VendorRef, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT vendor_email, vendor_name FROM menus ORDER BY vendor_name`)
	if err != nil {
		return nil, fmt.Errorf("list vendors with menus: %w", err)
	}
	defer rows.Close()

	vendors := make([]model.VendorRef, 0)
	for rows.Next() {
		var v model.VendorRef
		if err := rows.Scan(&v.Email, &v.Name); err != nil {
			return nil, fmt.Errorf("scan vendor: %w", err)
		}
		vendors = append(vendors, v)
	}
	return vendors, rows.Err()
}
