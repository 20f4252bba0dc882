package service

import (
	"errors"
	"fmt"
)

var (
	// card settlement is intentionally unimplemented, only cash reaches the ledger
	ErrUnsupportedPaymentMethod = errors.New("card payment is coming soon, please use cash on delivery")

	ErrDefaultMethodProtected  = errors.New("default card cannot be removed")
	ErrDefaultAddressProtected = errors.New("default address cannot be removed")
	ErrEmptyCart               = errors.New("cart is empty, nothing to checkout")
)

// ValidationError carries the first failing field so the caller can surface a
// specific, user-correctable message. No state is mutated when one is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a failed or timed-out write to the document store.
// The wrapped detail is for logs; users get a generic retry message.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to place order: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
