package domain

import (
	"sync"
)

// Account is a registered user with a prepaid balance and a history of placed
// orders. All balance and history access goes through the account mutex so
// that check-and-subtract is indivisible for concurrent callers.
type Account struct {
	mu           sync.Mutex
	username     string
	passwordHash string
	balance      Money
	history      []*Order
}

func NewAccount(username string, passwordHash string) *Account {
	return &Account{
		username:     username,
		passwordHash: passwordHash,
		balance:      Zero,
	}
}

// RestoreAccount rehydrates an account from storage.
func RestoreAccount(username string, passwordHash string, balance Money, history []*Order) *Account {
	return &Account{
		username:     username,
		passwordHash: passwordHash,
		balance:      balance,
		history:      history,
	}
}

func (a *Account) Username() string {
	return a.username
}

func (a *Account) PasswordHash() string {
	return a.passwordHash
}

func (a *Account) Balance() Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// TopUp adds amount to the balance. Money already guarantees amount is
// non-negative, so the balance can only grow.
func (a *Account) TopUp(amount Money) (Money, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	newBalance, err := a.balance.Add(amount)
	if err != nil {
		return Money{}, err
	}
	a.balance = newBalance
	return a.balance, nil
}

// DeductOrReject subtracts amount from the balance if the balance covers it
// and reports whether the deduction was accepted. The check and the subtract
// happen under one lock acquisition; a rejection leaves the balance untouched.
func (a *Account) DeductOrReject(amount Money) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.Cmp(amount) < 0 {
		return false, nil
	}

	newBalance, err := a.balance.Sub(amount)
	if err != nil {
		return false, err
	}
	a.balance = newBalance
	return true, nil
}

// RecordPlacedOrder appends order to the history and freezes its lines.
// Callers invoke this only after DeductOrReject accepted the order's total,
// and once per order.
func (a *Account) RecordPlacedOrder(order *Order) {
	a.mu.Lock()
	defer a.mu.Unlock()

	order.markPlaced()
	a.history = append(a.history, order)
}

// History returns placed orders in placement order.
func (a *Account) History() []*Order {
	a.mu.Lock()
	defer a.mu.Unlock()

	history := make([]*Order, len(a.history))
	copy(history, a.history)
	return history
}
