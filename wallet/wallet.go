// Package wallet holds the single shared player balance.
package wallet

import "errors"

var (
	// ErrInsufficientFunds is returned when a debit exceeds the balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidAmount is returned for non-positive debits and negative credits.
	ErrInvalidAmount = errors.New("invalid amount")
)

// Wallet is a mutable balance. Callers serialize access; every game engine
// shares one instance and applies its debit/credit sequence as a single step.
type Wallet struct {
	balance int64
}

// New returns a wallet holding the starting stake.
func New(start int64) *Wallet {
	if start < 0 {
		start = 0
	}
	return &Wallet{balance: start}
}

// Balance returns the current balance.
func (w *Wallet) Balance() int64 {
	return w.balance
}

// Debit removes amount from the balance. The balance is untouched on error.
func (w *Wallet) Debit(amount int64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	if amount > w.balance {
		return ErrInsufficientFunds
	}
	w.balance -= amount
	return nil
}

// Credit adds amount to the balance.
func (w *Wallet) Credit(amount int64) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	w.balance += amount
	return nil
}
