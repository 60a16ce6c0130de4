package service

import (
	"context"
	"errors"
	"strings"

	"campus-eats/internal/model"
	"campus-eats/pkg/apierror"
)

type MenuStore interface {
	Save(ctx context.Context, m model.Menu) error
	FindByVendorID(ctx context.Context, vendorID string) (model.Menu, error)
	FindByVendorEmail(ctx context.Context, email string) (model.Menu, error)
	DeleteByVendorID(ctx context.Context, vendorID string) error
	ListVendors(ctx context.Context) ([]model.VendorRef, error)
}

// MenuService manages the single menu each vendor owns. The vendor store is
// used to stamp the owning vendor's email and name onto the saved menu.
type MenuService struct {
	menus   MenuStore
	vendors AccountStore
}

func NewMenuService(menus MenuStore, vendors AccountStore) *MenuService {
	return &MenuService{menus: menus, vendors: vendors}
}

// Save creates or replaces the calling vendor's menu.
func (s *MenuService) Save(ctx context.Context, vendorID string, items []model.MenuItem) (model.Menu, error) {
	if len(items) == 0 {
		return model.Menu{}, apierror.BadRequest("Menu items are required")
	}
	for _, item := range items {
		if strings.TrimSpace(item.Name) == "" || item.Price < 0 {
			return model.Menu{}, apierror.BadRequest("Each menu item needs a name and a non-negative price")
		}
	}

	vendor, err := s.vendors.FindByID(ctx, vendorID)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return model.Menu{}, apierror.NotFound("Account not found")
		}
		return model.Menu{}, err
	}

	menu := model.Menu{
		VendorID:    vendor.ID,
		VendorEmail: vendor.Email,
		VendorName:  vendor.Name,
		Items:       items,
	}

	if err := s.menus.Save(ctx, menu); err != nil {
		return model.Menu{}, err
	}

	return s.menus.FindByVendorID(ctx, vendor.ID)
}

func (s *MenuService) GetForVendor(ctx context.Context, vendorID string) (model.Menu, error) {
	menu, err := s.menus.FindByVendorID(ctx, vendorID)
	if errors.Is(err, model.ErrMenuNotFound) {
		return model.Menu{}, apierror.NotFound("Menu not found")
	}
	return menu, err
}

func (s *MenuService) GetByEmail(ctx context.Context, email string) (model.Menu, error) {
	if strings.TrimSpace(email) == "" {
		return model.Menu{}, apierror.BadRequest("Vendor email is required")
	}

	menu, err := s.menus.FindByVendorEmail(ctx, email)
	if errors.Is(err, model.ErrMenuNotFound) {
		return model.Menu{}, apierror.NotFound("Menu not found")
	}
	return menu, err
}

func (s *MenuService) Delete(ctx context.Context, vendorID string) error {
	err := s.menus.DeleteByVendorID(ctx, vendorID)
	if errors.Is(err, model.ErrMenuNotFound) {
		return apierror.NotFound("Menu not found")
	}
	return err
}

// ListVendors reports every vendor that currently has a published menu.
func (s *MenuService) ListVendors(ctx context.Context) ([]model.VendorRef, error) {
	return s.menus.ListVendors(ctx)
}
