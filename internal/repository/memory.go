package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"campus-eats/internal/model"
)

// MemoryAccountStore is an in-memory account store used in tests. It mirrors
// the SQL repositories' behavior, including case-insensitive email lookup and
// rejecting a duplicate insert.
type MemoryAccountStore struct {
	mu      sync.Mutex
	byID    map[string]model.Account
	byEmail map[string]model.Account
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		byID:    map[string]model.Account{},
		byEmail: map[string]model.Account{},
	}
}

func (s *MemoryAccountStore) FindByID(_ context.Context, id string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[id]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return a, nil
}

func (s *MemoryAccountStore) FindByEmail(_ context.Context, email string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.Account{}, model.ErrAccountNotFound
	}
	return a, nil
}

func (s *MemoryAccountStore) Create(_ context.Context, a model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(a.Email)
	if _, exists := s.byEmail[key]; exists {
		return model.ErrAccountAlreadyExists
	}
	s.byID[a.ID] = a
	s.byEmail[key] = a
	return nil
}

// MemoryMenuStore is an in-memory menu store used in tests.
type MemoryMenuStore struct {
	mu    sync.Mutex
	menus map[string]model.Menu
}

func NewMemoryMenuStore() *MemoryMenuStore {
	return &MemoryMenuStore{menus: map[string]model.Menu{}}
}

func (s *MemoryMenuStore) Save(_ context.Context, m model.Menu) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.UpdatedAt = time.Now().UTC()
	s.menus[m.VendorID] = m
	return nil
}

func (s *MemoryMenuStore) FindByVendorID(_ context.Context, vendorID string) (model.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.menus[vendorID]
	if !ok {
		return model.Menu{}, model.ErrMenuNotFound
	}
	return m, nil
}

func (s *MemoryMenuStore) FindByVendorEmail(_ context.Context, email string) (model.Menu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, m := range s.menus {
		if strings.EqualFold(m.VendorEmail, strings.TrimSpace(email)) {
			return m, nil
		}
	}
	return model.Menu{}, model.ErrMenuNotFound
}

func (s *MemoryMenuStore) DeleteByVendorID(_ context.Context, vendorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menus[vendorID]; !ok {
		return model.ErrMenuNotFound
	}
	delete(s.menus, vendorID)
	return nil
}

func (s *MemoryMenuStore) ListVendors(_ context.Context) ([]model.VendorRef, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vendors := make([]model.VendorRef, 0, len(s.menus))
	for _, m := range s.menus {
		vendors = append(vendors, model.VendorRef{Email: m.VendorEmail, Name: m.VendorName})
	}
	sort.Slice(vendors, func(i, j int) bool { return vendors[i].Name < vendors[j].Name })
	return vendors, nil
}
