package domain

import (
	"time"
)

// OrderLine is a quantity of one menu item. Immutable once added to an order.
type OrderLine struct {
	item     MenuItem
	quantity int
}

func NewOrderLine(item MenuItem, quantity int) (OrderLine, error) {
	if quantity <= 0 {
		return OrderLine{}, ErrInvalidQuantity
	}
	return OrderLine{item: item, quantity: quantity}, nil
}

func (l OrderLine) Item() MenuItem {
	return l.item
}

func (l OrderLine) Quantity() int {
	return l.quantity
}

func (l OrderLine) Subtotal() (Money, error) {
	return l.item.Price.Mul(l.quantity)
}

// Order is a timestamped sequence of order lines belonging to one account.
// Lines may be appended only while the order is a draft; placement makes it
// immutable.
type Order struct {
	id        string
	username  string
	createdAt time.Time
	lines     []OrderLine
	placed    bool
}

func NewOrder(id string, username string, createdAt time.Time) *Order {
	return &Order{
		id:        id,
		username:  username,
		createdAt: createdAt,
	}
}

func (o *Order) AddLine(item MenuItem, quantity int) error {
	if o.placed {
		return ErrOrderPlaced
	}
	line, err := NewOrderLine(item, quantity)
	if err != nil {
		return err
	}
	o.lines = append(o.lines, line)
	return nil
}

// Total folds the line subtotals, seeded at Zero. An order with no lines
// totals Zero.
func (o *Order) Total() (Money, error) {
	total := Zero
	for _, line := range o.lines {
		subtotal, err := line.Subtotal()
		if err != nil {
			return Money{}, err
		}
		total, err = total.Add(subtotal)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Lines returns the order lines in insertion order.
func (o *Order) Lines() []OrderLine {
	lines := make([]OrderLine, len(o.lines))
	copy(lines, o.lines)
	return lines
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) Username() string {
	return o.username
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) Placed() bool {
	return o.placed
}

func (o *Order) markPlaced() {
	o.placed = true
}

// RestoreOrder rehydrates a placed order from storage.
func RestoreOrder(id string, username string, createdAt time.Time, lines []OrderLine) *Order {
	return &Order{
		id:        id,
		username:  username,
		createdAt: createdAt,
		lines:     lines,
		placed:    true,
	}
}
