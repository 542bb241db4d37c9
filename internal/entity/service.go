package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Vendor struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

type Employee struct {
	ID       uuid.UUID
	VendorID uuid.UUID
	Name     string
	Active   bool
}

type ServicePlace string

const (
	ServicePlaceVendor ServicePlace = "vendor"
	ServicePlaceHome   ServicePlace = "home"
)

func (p ServicePlace) String() string {
	return string(p)
}

// Service is a bookable offering published by a vendor. DiscountPct and
// TaxPct are percentage rates frozen onto order items at creation time.
type Service struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	DiscountPct decimal.Decimal
	TaxPct      decimal.Decimal
	Duration    time.Duration // slot length for scheduled bookings
	Place       ServicePlace
	Active      bool
	CreatedAt   time.Time
}

// Pricing returns the derived breakdown for a single unit of the service.
func (s Service) Pricing() Pricing {
	return ComputePricing(s.Price, s.DiscountPct, s.TaxPct)
}

// Availability is a bookable time window published for a service on a
// given date. EmployeeID is zero when the window is not tied to a
// particular employee; reservations then contend on the service itself.
type Availability struct {
	ID         uuid.UUID
	ServiceID  uuid.UUID
	EmployeeID uuid.UUID
	Date       time.Time
	Start      time.Time
	End        time.Time
	CreatedAt  time.Time
}

// Window returns the availability bounds as a slot.
func (a Availability) Window() Slot {
	return Slot{Start: a.Start, End: a.End}
}

type Address struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Label    string
	City     string
	District string
	Street   string
	Lat      decimal.Decimal
	Lng      decimal.Decimal
}
