package domain

import "errors"

var (
	ErrNotFound         = errors.New("not found")
	ErrHasOrders        = errors.New("customer has existing orders")
	ErrDeleteInProgress = errors.New("delete already in progress")
)

// FieldError reports which input field failed validation.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string { return e.Field + " " + e.Reason }
