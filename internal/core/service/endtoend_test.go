package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ardhitama/catering/internal/adapter/auth"
	"github.com/ardhitama/catering/internal/adapter/storage/memory"
	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/ardhitama/catering/internal/core/port"
	"github.com/ardhitama/catering/internal/core/service"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// TestService_CounterWorkflow runs the full counter session against the
// in-memory repositories: register, login, top up, order within balance,
// then an order the balance cannot cover.
func TestService_CounterWorkflow(t *testing.T) {
	ctx := context.Background()
	logger, _ := zap.NewDevelopment()

	accounts := memory.NewAccountRepository()
	catalog := memory.NewCatalogRepository(memory.DefaultMenu())
	tokenService, err := auth.New()
	assert.NoError(t, err)

	s, err := service.NewService(accounts, catalog, tokenService, logger)
	assert.NoError(t, err)

	_, err = s.Register(ctx, "budi", "secret")
	assert.NoError(t, err)

	_, err = s.Register(ctx, "budi", "other")
	assert.Equal(t, domain.ErrConflictingData, err)

	token, err := s.Login(ctx, "budi", "secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	payload, err := tokenService.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "budi", payload.Username)

	menu, err := s.Menu(ctx)
	assert.NoError(t, err)
	assert.Len(t, menu, 3)

	// scenario: top up 20000, order one Nasi Goreng at 15000
	balance, err := s.TopUp(ctx, "budi", money(t, "20000"))
	assert.NoError(t, err)
	assert.True(t, balance.Equal(money(t, "20000")))

	order, err := s.PlaceOrder(ctx, "budi", []port.OrderRequestLine{
		{MenuItemID: "1", Quantity: 1},
	})
	assert.NoError(t, err)
	total, err := order.Total()
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(t, "15000")))

	balance, err = s.Balance(ctx, "budi")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(money(t, "5000")))

	orders, err := s.Orders(ctx, "budi")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	// scenario: a 20000 order against the remaining 5000 is rejected
	_, err = s.PlaceOrder(ctx, "budi", []port.OrderRequestLine{
		{MenuItemID: "2", Quantity: 1},
	})
	assert.Equal(t, domain.ErrInsufficientBalance, err)

	balance, err = s.Balance(ctx, "budi")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(money(t, "5000")))

	orders, err = s.Orders(ctx, "budi")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)

	// scenario: two lines, 15000x2 + 5000x3 = 45000
	_, err = s.TopUp(ctx, "budi", money(t, "40000"))
	assert.NoError(t, err)

	order, err = s.PlaceOrder(ctx, "budi", []port.OrderRequestLine{
		{MenuItemID: "1", Quantity: 2},
		{MenuItemID: "3", Quantity: 3},
	})
	assert.NoError(t, err)
	total, err = order.Total()
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(t, "45000")))

	balance, err = s.Balance(ctx, "budi")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(domain.Zero))

	orders, err = s.Orders(ctx, "budi")
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}

// TestService_ConcurrentOrdersNeverOverdraw places two simultaneous orders
// against a balance that covers only one of them: exactly one may be
// accepted, and only the accepted one may reach the history.
func TestService_ConcurrentOrdersNeverOverdraw(t *testing.T) {
	ctx := context.Background()
	logger, _ := zap.NewDevelopment()

	accounts := memory.NewAccountRepository()
	catalog := memory.NewCatalogRepository(memory.DefaultMenu())
	tokenService, err := auth.New()
	assert.NoError(t, err)

	s, err := service.NewService(accounts, catalog, tokenService, logger)
	assert.NoError(t, err)

	_, err = s.Register(ctx, "budi", "secret")
	assert.NoError(t, err)

	_, err = s.TopUp(ctx, "budi", money(t, "20000"))
	assert.NoError(t, err)

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepts := 0
	rejects := 0

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.PlaceOrder(ctx, "budi", []port.OrderRequestLine{
				{MenuItemID: "1", Quantity: 1},
			})
			mu.Lock()
			defer mu.Unlock()
			switch err {
			case nil:
				accepts++
			case domain.ErrInsufficientBalance:
				rejects++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepts)
	assert.Equal(t, 1, rejects)

	balance, err := s.Balance(ctx, "budi")
	assert.NoError(t, err)
	assert.True(t, balance.Equal(money(t, "5000")))

	orders, err := s.Orders(ctx, "budi")
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}
