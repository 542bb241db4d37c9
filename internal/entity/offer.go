package entity

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type OfferType string

const (
	// OfferTypeVendor offers apply only to orders of the issuing vendor.
	OfferTypeVendor OfferType = "vendor"
	// OfferTypeAdmin offers are platform-wide and apply to any vendor's
	// orders. They start inactive until explicitly activated.
	OfferTypeAdmin OfferType = "admin"
)

func (t OfferType) String() string {
	return string(t)
}

type Offer struct {
	ID          uuid.UUID
	VendorID    uuid.UUID // zero for admin offers
	Type        OfferType
	Code        string
	DiscountPct decimal.Decimal
	Uses        uint32 // total redemption budget across all users
	Redeemed    uint32 // current redemption count
	Active      bool
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Redeemable checks every offer predicate except the per-user one, which
// needs the redemption history and lives in the service layer:
// active, unexpired at now, uses budget not exhausted, and scoped to the
// given vendor (admin offers match any vendor).
func (o Offer) Redeemable(vendorID uuid.UUID, now time.Time) bool {
	if !o.Active || o.Redeemed >= o.Uses {
		return false
	}
	if !o.ExpiresAt.IsZero() && !now.Before(o.ExpiresAt) {
		return false
	}
	if o.Type == OfferTypeAdmin {
		return true
	}

	return o.VendorID == vendorID
}

// NormalizeOfferCode canonicalizes a user-supplied code for lookup.
func NormalizeOfferCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
