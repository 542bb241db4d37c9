package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusCompleted InvoiceStatus = "COMPLETED"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

// Invoice is the immutable record of a settled order. All monetary
// figures and line item fields are snapshots; later edits to services,
// offers or profiles never change an issued invoice.
type Invoice struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	CustomerID   uuid.UUID
	VendorID     uuid.UUID
	Year         int
	AnnualFigure int64 // sequential within Year, starts at 1
	Price        decimal.Decimal
	DiscountVal  decimal.Decimal // offer discount applied at settlement
	TaxValue     decimal.Decimal
	Total        decimal.Decimal
	OfferCode    string // empty when no offer was applied
	Status       InvoiceStatus
	LineItems    []InvoiceLineItem
	CreatedAt    time.Time
}

// Number renders the human-readable invoice number, e.g. "INV-2026-000042".
func (i Invoice) Number() string {
	return fmt.Sprintf("INV-%d-%06d", i.Year, i.AnnualFigure)
}

// InvoiceLineItem snapshots one order item as plain values.
type InvoiceLineItem struct {
	ID           uuid.UUID
	InvoiceID    uuid.UUID
	ServiceName  string
	EmployeeName string
	Price        decimal.Decimal
	DiscountPct  decimal.Decimal
	TaxPct       decimal.Decimal
	Quantity     uint32
	Date         time.Time
}
