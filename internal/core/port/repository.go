package port

import (
	"context"

	"github.com/ardhitama/catering/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

// CatalogRepository is the read-only menu catalog collaborator.
type CatalogRepository interface {
	ListMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	GetMenuItem(ctx context.Context, id string) (domain.MenuItem, error)
}

// AccountRepository is the account directory collaborator. Uniqueness of
// usernames is enforced here, not by the aggregate.
//
// UpdateAccount runs updateFn against the stored account and persists the
// outcome as one unit: an implementation must guarantee that two concurrent
// updates of the same account never lose each other's writes. If updateFn
// returns an error the account is left unchanged.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *domain.Account) (*domain.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, username string, updateFn UpdateAccountFn) (*domain.Account, error)
}

type UpdateAccountFn func(*domain.Account) error
