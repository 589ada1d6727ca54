package port

import (
	"context"

	"github.com/ardhitama/catering/internal/core/domain"
)

// OrderRequestLine is one requested line of a new order.
type OrderRequestLine struct {
	MenuItemID string
	Quantity   int
}

type Service interface {
	Register(ctx context.Context, username string, password string) (*domain.Account, error)
	Login(ctx context.Context, username string, password string) (string, error)

	Menu(ctx context.Context) ([]domain.MenuItem, error)
	MenuItem(ctx context.Context, id string) (domain.MenuItem, error)

	TopUp(ctx context.Context, username string, amount domain.Money) (domain.Money, error)
	Balance(ctx context.Context, username string) (domain.Money, error)

	PlaceOrder(ctx context.Context, username string, lines []OrderRequestLine) (*domain.Order, error)
	Orders(ctx context.Context, username string) ([]*domain.Order, error)
}
