package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending     OrderStatus = "PENDING"
	OrderStatusApproval    OrderStatus = "APPROVAL"
	OrderStatusDisapproval OrderStatus = "DISAPPROVAL"
	OrderStatusPayment     OrderStatus = "PAYMENT"
	OrderStatusCompleted   OrderStatus = "COMPLETED"
)

func (s OrderStatus) String() string {
	return string(s)
}

// CanTransition reports whether the lifecycle allows moving to next.
// Final states never transition. A vendor may still disapprove an
// already approved order before it is paid.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	switch s {
	case OrderStatusPending:
		return next == OrderStatusApproval || next == OrderStatusDisapproval
	case OrderStatusApproval:
		return next == OrderStatusPayment || next == OrderStatusDisapproval ||
			next == OrderStatusCompleted
	case OrderStatusPayment:
		return next == OrderStatusCompleted
	}

	return false
}

type PaymentType string

const (
	// PaymentTypeSystem orders are settled through the platform's
	// payment providers.
	PaymentTypeSystem PaymentType = "SYSTEM"
	// PaymentTypeVendor orders are settled directly with the vendor
	// outside the platform.
	PaymentTypeVendor PaymentType = "VENDOR"
)

func (p PaymentType) Validate() error {
	switch p {
	case PaymentTypeSystem, PaymentTypeVendor:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment type %s", ErrInvalidArgument, p)
	}
}

func (p PaymentType) String() string {
	return string(p)
}

type Order struct {
	ID          uuid.UUID
	CustomerID  uuid.UUID
	VendorID    uuid.UUID
	AddressID   uuid.UUID // zero unless any item's service is performed at home
	Status      OrderStatus
	PaymentType PaymentType
	TaxPct      decimal.Decimal
	Items       []OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Price sums the frozen item prices times quantity, before any discount.
func (o Order) Price() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Price.Mul(decimal.New(int64(item.Quantity), 0)))
	}

	return total
}

// Total derives the payable amount with an optional offer discount
// applied on top of the order total.
func (o Order) Total(offerDiscountPct decimal.Decimal) Pricing {
	return ComputePricing(o.Price(), offerDiscountPct, o.TaxPct)
}

// OrderItem freezes the service's price, discount and tax rates at
// creation time so later catalog edits cannot change what was agreed.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ServiceID   uuid.UUID
	EmployeeID  uuid.UUID // zero when the booking is not tied to an employee
	ServiceName string
	Price       decimal.Decimal
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
	Quantity    uint32
	Date        time.Time // zero for unscheduled items
	Slot        Slot      // zero for unscheduled items
}

// Scheduled reports whether the item holds a concrete booking slot.
func (i OrderItem) Scheduled() bool {
	return !i.Slot.Start.IsZero()
}

// Reservation holds an order item's slot. It is created inactive with
// the item and only blocks the calendar while Active.
type Reservation struct {
	ID          uuid.UUID
	OrderItemID uuid.UUID
	ServiceID   uuid.UUID
	EmployeeID  uuid.UUID
	Date        time.Time
	Slot        Slot
	Active      bool
	CreatedAt   time.Time
}

type OrderFilter struct {
	Status  *OrderStatus
	Page    uint64
	Limit   uint64
	SortBy  OrderSortCol
	OrderBy OrderByCol
}

type OrderSortCol string

func (c OrderSortCol) String() string {
	return string(c)
}

const (
	OrderSortByCreatedAt OrderSortCol = "created_at"
	OrderSortByStatus    OrderSortCol = "status"
)

func (c OrderSortCol) IsValid() bool {
	switch c {
	case OrderSortByCreatedAt, OrderSortByStatus:
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
