// Package memory holds the process-local repositories matching the reference
// single-session behavior. Accounts are shared instances mutated in place
// under their own lock.
package memory

import (
	"context"
	"sync"

	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
)

type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (r *AccountRepository) CreateAccount(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.Username()]; ok {
		return nil, domain.ErrConflictingData
	}
	r.accounts[account.Username()] = account
	return account, nil
}

func (r *AccountRepository) GetAccountByUsername(_ context.Context, username string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[username]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return account, nil
}

// UpdateAccount applies updateFn to the shared account instance. Mutations
// inside updateFn go through the account's own lock, so concurrent updates
// see each other's writes.
func (r *AccountRepository) UpdateAccount(_ context.Context, username string,
	updateFn port.UpdateAccountFn) (*domain.Account, error) {
	r.mu.RLock()
	account, ok := r.accounts[username]
	r.mu.RUnlock()

	if !ok {
		return nil, domain.ErrDataNotFound
	}
	if err := updateFn(account); err != nil {
		return nil, err
	}
	return account, nil
}

type CatalogRepository struct {
	items []domain.MenuItem
	byID  map[string]domain.MenuItem
}

func NewCatalogRepository(items []domain.MenuItem) *CatalogRepository {
	byID := make(map[string]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &CatalogRepository{items: items, byID: byID}
}

func (r *CatalogRepository) ListMenuItems(_ context.Context) ([]domain.MenuItem, error) {
	items := make([]domain.MenuItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *CatalogRepository) GetMenuItem(_ context.Context, id string) (domain.MenuItem, error) {
	item, ok := r.byID[id]
	if !ok {
		return domain.MenuItem{}, domain.ErrDataNotFound
	}
	return item, nil
}

// DefaultMenu is the fixed counter menu the catalog is seeded with.
func DefaultMenu() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: "1", Name: "Nasi Goreng", Description: "Nasi goreng pedas", Price: mustMoney("15000")},
		{ID: "2", Name: "Ayam Bakar", Description: "Ayam bakar manis", Price: mustMoney("20000")},
		{ID: "3", Name: "Es Teh", Description: "Minuman dingin segar", Price: mustMoney("5000")},
	}
}

func mustMoney(s string) domain.Money {
	m, err := domain.ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}
