package types

import "errors"

// Validation errors raised by the bookstore flows before any query runs.
var (
	ErrEmptyName    = errors.New("customer name must not be empty")
	ErrNoCustomer   = errors.New("no current customer")
	ErrNoBook       = errors.New("no book selected")
	ErrInvalidPrice = errors.New("sale price below the minimum")
)

// ErrQueryFailed marks a flow aborted by a database failure. The failure has
// already been reported to the user by the time a caller sees this error.
var ErrQueryFailed = errors.New("database query failed")
