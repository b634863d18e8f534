package entity

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyExists   = errors.New("already exists")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Invoice lifecycle rule violations. They are permanent and never retried.
var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotEditable       = errors.New("invoice is not editable")
	ErrNotDeletable      = errors.New("invoice is not deletable")
	ErrAlreadyPaid       = errors.New("already paid")
	ErrUnderpaid         = errors.New("payment is less than the invoice total")
)

var (
	ErrInvalidVatRate  = errors.New("invalid vat rate")
	ErrInvalidUnit     = errors.New("invalid unit")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidTemplate = errors.New("invalid number format template")
)

// TransitionError reports a status change the transition table does not allow.
type TransitionError struct {
	Action string
	From   InvoiceStatus
	To     InvoiceStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s from %s to %s", e.Action, ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// RuleError reports an action rejected because of the invoice's current status.
type RuleError struct {
	Action string
	Status InvoiceStatus
	Err    error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: %s (status %s)", e.Action, e.Err, e.Status)
}

func (e *RuleError) Unwrap() error { return e.Err }
