package domain_test

import (
	"testing"
	"time"

	"github.com/ardhitama/catering/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func menuItem(t *testing.T, id string, name string, price string) domain.MenuItem {
	t.Helper()
	return domain.MenuItem{ID: id, Name: name, Price: money(t, price)}
}

func TestOrderLine_New(t *testing.T) {
	item := menuItem(t, "1", "Nasi Goreng", "15000")

	tests := []struct {
		name     string
		quantity int
		expError error
	}{
		{name: "one", quantity: 1},
		{name: "many", quantity: 10},
		{name: "zero", quantity: 0, expError: domain.ErrInvalidQuantity},
		{name: "negative", quantity: -1, expError: domain.ErrInvalidQuantity},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			line, err := domain.NewOrderLine(item, test.quantity)
			assert.Equal(t, test.expError, err)
			if test.expError == nil {
				assert.Equal(t, test.quantity, line.Quantity())
			}
		})
	}
}

func TestOrderLine_Subtotal(t *testing.T) {
	line, err := domain.NewOrderLine(menuItem(t, "1", "Nasi Goreng", "15000"), 3)
	assert.NoError(t, err)

	subtotal, err := line.Subtotal()
	assert.NoError(t, err)
	assert.True(t, subtotal.Equal(money(t, "45000")))
}

func TestOrder_Total(t *testing.T) {
	order := domain.NewOrder("order-1", "budi", time.Now())

	total, err := order.Total()
	assert.NoError(t, err)
	assert.True(t, total.Equal(domain.Zero), "empty order totals zero")

	assert.NoError(t, order.AddLine(menuItem(t, "1", "Nasi Goreng", "15000"), 2))
	assert.NoError(t, order.AddLine(menuItem(t, "3", "Es Teh", "5000"), 3))

	total, err = order.Total()
	assert.NoError(t, err)
	assert.True(t, total.Equal(money(t, "45000")))
}

func TestOrder_AddLineInvalidQuantity(t *testing.T) {
	order := domain.NewOrder("order-1", "budi", time.Now())

	err := order.AddLine(menuItem(t, "1", "Nasi Goreng", "15000"), 0)
	assert.Equal(t, domain.ErrInvalidQuantity, err)
	assert.Len(t, order.Lines(), 0)
}

func TestOrder_LinesInsertionOrder(t *testing.T) {
	order := domain.NewOrder("order-1", "budi", time.Now())

	assert.NoError(t, order.AddLine(menuItem(t, "2", "Ayam Bakar", "20000"), 1))
	assert.NoError(t, order.AddLine(menuItem(t, "1", "Nasi Goreng", "15000"), 1))
	assert.NoError(t, order.AddLine(menuItem(t, "3", "Es Teh", "5000"), 1))

	var ids []string
	for _, line := range order.Lines() {
		ids = append(ids, line.Item().ID)
	}
	assert.Equal(t, []string{"2", "1", "3"}, ids)

	// a second iteration sees the same sequence
	var again []string
	for _, line := range order.Lines() {
		again = append(again, line.Item().ID)
	}
	assert.Equal(t, ids, again)
}

func TestOrder_PlacedIsImmutable(t *testing.T) {
	order := domain.NewOrder("order-1", "budi", time.Now())
	assert.NoError(t, order.AddLine(menuItem(t, "1", "Nasi Goreng", "15000"), 1))

	account := domain.NewAccount("budi", "hash")
	_, err := account.TopUp(money(t, "15000"))
	assert.NoError(t, err)

	total, err := order.Total()
	assert.NoError(t, err)
	accepted, err := account.DeductOrReject(total)
	assert.NoError(t, err)
	assert.True(t, accepted)

	account.RecordPlacedOrder(order)
	assert.True(t, order.Placed())

	err = order.AddLine(menuItem(t, "3", "Es Teh", "5000"), 1)
	assert.Equal(t, domain.ErrOrderPlaced, err)
	assert.Len(t, order.Lines(), 1)
}
