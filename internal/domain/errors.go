package domain

import "errors"

var (
	ErrInvalidToken         = errors.New("invalid security token")
	ErrAmountRequired       = errors.New("amount required")
	ErrTransactionRequired  = errors.New("transaction id required")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrDuplicateTransaction = errors.New("duplicate transaction")
	ErrNotFound             = errors.New("not found")
)
