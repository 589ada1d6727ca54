package domain

import (
	"github.com/govalues/decimal"
)

// Money is a non-negative decimal amount. The zero value is valid and equals Zero.
type Money struct {
	amount decimal.Decimal
}

var Zero = Money{amount: decimal.Zero}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNeg() {
		return Money{}, ErrInvalidAmount
	}
	return Money{amount: amount}, nil
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(d)
}

func (m Money) Add(other Money) (Money, error) {
	sum, err := m.amount.Add(other.amount)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(sum)
}

func (m Money) Sub(other Money) (Money, error) {
	diff, err := m.amount.Sub(other.amount)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(diff)
}

func (m Money) Mul(multiplier int) (Money, error) {
	if multiplier < 0 {
		return Money{}, ErrInvalidAmount
	}
	d, err := decimal.New(int64(multiplier), 0)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	product, err := m.amount.Mul(d)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(product)
}

// Cmp returns -1, 0 or 1 by exact decimal value.
func (m Money) Cmp(other Money) int {
	return m.amount.Cmp(other.amount)
}

func (m Money) Equal(other Money) bool {
	return m.amount.Cmp(other.amount) == 0
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.String()
}
