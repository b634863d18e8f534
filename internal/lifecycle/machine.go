// Package lifecycle holds the invoice status machine: the allowed transitions and the
// actions (issue, pay, cancel, delete) built on top of them.
package lifecycle

import (
	"slices"
	"time"

	"github.com/lljaworski/invoicing/internal/entity"
)

const (
	ActionIssue      = "issue"
	ActionMarkAsPaid = "mark as paid"
	ActionCancel     = "cancel"
	ActionDelete     = "delete"
	ActionEdit       = "edit"
)

// transitions is the complete set of legal status changes. Anything absent is rejected.
var transitions = map[entity.InvoiceStatus][]entity.InvoiceStatus{
	entity.InvoiceStatusDraft:  {entity.InvoiceStatusIssued, entity.InvoiceStatusPaid},
	entity.InvoiceStatusIssued: {entity.InvoiceStatusPaid, entity.InvoiceStatusCancelled},
}

func CanTransition(from, to entity.InvoiceStatus) bool {
	return slices.Contains(transitions[from], to)
}

type Machine struct {
	now func() time.Time
}

type Option func(*Machine)

func WithClock(now func() time.Time) Option {
	return func(m *Machine) {
		m.now = now
	}
}

func New(opts ...Option) *Machine {
	m := &Machine{now: time.Now}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Transition moves the invoice to the target status if the table allows it.
func (m *Machine) Transition(inv *entity.Invoice, to entity.InvoiceStatus, action string) error {
	if !CanTransition(inv.Status, to) {
		return &entity.TransitionError{Action: action, From: inv.Status, To: to}
	}

	inv.Status = to

	return nil
}

func (m *Machine) Issue(inv *entity.Invoice) error {
	return m.Transition(inv, entity.InvoiceStatusIssued, ActionIssue)
}

// MarkAsPaid sets the invoice paid at paidAt, or now when paidAt is nil.
// An invoice already flagged as paid is reported as ErrAlreadyPaid before the
// transition table is consulted.
func (m *Machine) MarkAsPaid(inv *entity.Invoice, paidAt *time.Time) error {
	if inv.IsPaid {
		return &entity.RuleError{Action: ActionMarkAsPaid, Status: inv.Status, Err: entity.ErrAlreadyPaid}
	}

	err := m.Transition(inv, entity.InvoiceStatusPaid, ActionMarkAsPaid)
	if err != nil {
		return err
	}

	at := m.now()
	if paidAt != nil {
		at = *paidAt
	}

	inv.IsPaid = true
	inv.PaidAt = &at

	return nil
}

// Cancel is only legal from ISSUED. Drafts have to be deleted instead.
func (m *Machine) Cancel(inv *entity.Invoice) error {
	return m.Transition(inv, entity.InvoiceStatusCancelled, ActionCancel)
}

// SoftDelete stamps the deletion time and leaves the status untouched.
func (m *Machine) SoftDelete(inv *entity.Invoice) error {
	if !inv.Status.IsDeletable() {
		return &entity.RuleError{Action: ActionDelete, Status: inv.Status, Err: entity.ErrNotDeletable}
	}

	if inv.IsDeleted() {
		return &entity.RuleError{Action: ActionDelete, Status: inv.Status, Err: entity.ErrNotFound}
	}

	at := m.now()
	inv.DeletedAt = &at

	return nil
}

func (m *Machine) EnsureEditable(inv *entity.Invoice) error {
	if !CanBeEdited(inv) {
		return &entity.RuleError{Action: ActionEdit, Status: inv.Status, Err: entity.ErrNotEditable}
	}

	return nil
}

func CanBeEdited(inv *entity.Invoice) bool {
	return inv.Status.IsEditable() && !inv.IsDeleted()
}

func CanBeDeleted(inv *entity.Invoice) bool {
	return inv.Status.IsDeletable() && !inv.IsDeleted()
}
