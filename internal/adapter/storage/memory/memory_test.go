package memory_test

import (
	"context"
	"sync"
	"testing"

	"github.com/ardhitama/catering/internal/adapter/storage/memory"
	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func money(t *testing.T, s string) domain.Money {
	t.Helper()
	m, err := domain.ParseMoney(s)
	assert.NoError(t, err)
	return m
}

func TestAccountRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	_, err := repo.GetAccountByUsername(ctx, "budi")
	assert.Equal(t, domain.ErrDataNotFound, err)

	account, err := repo.CreateAccount(ctx, domain.NewAccount("budi", "hash"))
	assert.NoError(t, err)

	_, err = repo.CreateAccount(ctx, domain.NewAccount("budi", "other"))
	assert.Equal(t, domain.ErrConflictingData, err)

	// usernames are case-sensitive keys
	_, err = repo.GetAccountByUsername(ctx, "Budi")
	assert.Equal(t, domain.ErrDataNotFound, err)

	found, err := repo.GetAccountByUsername(ctx, "budi")
	assert.NoError(t, err)
	assert.Same(t, account, found)

	updated, err := repo.UpdateAccount(ctx, "budi", func(a *domain.Account) error {
		_, err := a.TopUp(money(t, "5000"))
		return err
	})
	assert.NoError(t, err)
	assert.Same(t, account, updated)
	assert.True(t, account.Balance().Equal(money(t, "5000")))

	_, err = repo.UpdateAccount(ctx, "siti", func(a *domain.Account) error { return nil })
	assert.Equal(t, domain.ErrDataNotFound, err)
}

func TestAccountRepository_UpdateAccountFailureLeavesBalance(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	_, err := repo.CreateAccount(ctx, domain.NewAccount("budi", "hash"))
	assert.NoError(t, err)

	_, err = repo.UpdateAccount(ctx, "budi", func(a *domain.Account) error {
		return domain.ErrInsufficientBalance
	})
	assert.Equal(t, domain.ErrInsufficientBalance, err)

	account, err := repo.GetAccountByUsername(ctx, "budi")
	assert.NoError(t, err)
	assert.True(t, account.Balance().Equal(domain.Zero))
}

func TestAccountRepository_ConcurrentUpdatesConserveBalance(t *testing.T) {
	// two interleaved deductions through the repository must never both
	// succeed against a balance that covers only one of them
	ctx := context.Background()
	repo := memory.NewAccountRepository()

	account, err := repo.CreateAccount(ctx, domain.NewAccount("budi", "hash"))
	assert.NoError(t, err)
	_, err = account.TopUp(money(t, "20000"))
	assert.NoError(t, err)

	amount := money(t, "15000")

	var wg sync.WaitGroup
	var mu sync.Mutex
	accepts := 0

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.UpdateAccount(ctx, "budi", func(a *domain.Account) error {
				accepted, err := a.DeductOrReject(amount)
				assert.NoError(t, err)
				if accepted {
					mu.Lock()
					accepts++
					mu.Unlock()
				}
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, accepts)
	assert.True(t, account.Balance().Equal(money(t, "5000")))
}

func TestCatalogRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewCatalogRepository(memory.DefaultMenu())

	items, err := repo.ListMenuItems(ctx)
	assert.NoError(t, err)
	assert.Len(t, items, 3)
	assert.Equal(t, "Nasi Goreng", items[0].Name)

	item, err := repo.GetMenuItem(ctx, "3")
	assert.NoError(t, err)
	assert.Equal(t, "Es Teh", item.Name)
	assert.Equal(t, "5000", item.Price.String())

	_, err = repo.GetMenuItem(ctx, "9")
	assert.Equal(t, domain.ErrDataNotFound, err)
}
