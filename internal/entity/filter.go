package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type InvoiceFilter struct {
	Status        *InvoiceStatus
	Currency      *Currency
	CustomerID    *uuid.UUID
	IssuedFrom    *time.Time
	IssuedTo      *time.Time
	NumberPattern *string
	Page          uint64
	Limit         uint64
	SortBy        InvoiceSortCol
	OrderBy       OrderByCol
}

type InvoiceSortCol string

func (c InvoiceSortCol) String() string {
	return string(c)
}

const (
	SortByNumber    InvoiceSortCol = "number"
	SortByIssueDate InvoiceSortCol = "issue_date"
	SortByTotal     InvoiceSortCol = "total"
	SortByCreatedAt InvoiceSortCol = "created_at"
)

func (c InvoiceSortCol) IsValid() bool {
	switch c {
	case SortByNumber, SortByIssueDate, SortByTotal, SortByCreatedAt:
		return true
	}

	return false
}

type OrderByCol string

func (o OrderByCol) String() string {
	return string(o)
}

const (
	DESC OrderByCol = "desc"
	ASC  OrderByCol = "asc"
)

func (o OrderByCol) IsValid() bool {
	switch o {
	case DESC, ASC:
		return true
	}

	return false
}
