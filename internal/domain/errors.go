package domain

import "errors"

// ErrInsufficientFunds is returned when a debit would leave a negative balance.
// It stands for the domain's "Dinero Insuficiente" error; the message is part of
// the contract and is shown to callers verbatim.
var ErrInsufficientFunds = errors.New("Insufficient Funds")

// Lookup and validation errors raised by the service layer
var (
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrInvalidOwner    = errors.New("invalid owner")
	ErrBankNotFound    = errors.New("bank not found")
	ErrBankExists      = errors.New("bank already exists")
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account already exists")
)
