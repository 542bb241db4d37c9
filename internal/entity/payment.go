package entity

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentProvider string

const (
	ProviderWallet        PaymentProvider = "WALLET"
	ProviderAlrajhi       PaymentProvider = "ALRAJHI"
	ProviderAlrajhiWallet PaymentProvider = "ALRAJHI_WITH_WALLET"
	ProviderTamara        PaymentProvider = "TAMARA"
)

func (p PaymentProvider) Validate() error {
	switch p {
	case ProviderWallet, ProviderAlrajhi, ProviderAlrajhiWallet, ProviderTamara:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment provider %s", ErrInvalidArgument, p)
	}
}

func (p PaymentProvider) String() string {
	return string(p)
}

// Payment records a successful settlement of an order. Exactly one
// exists per paid order; provider-specific details live in the typed
// detail records below.
type Payment struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	InvoiceID uuid.UUID
	Provider  PaymentProvider
	Amount    decimal.Decimal
	CreatedAt time.Time
}

// WalletPaymentDetail splits the settled amount between wallet funds
// and the gateway. GatewayAmount is zero for wallet-only payments.
type WalletPaymentDetail struct {
	PaymentID     uuid.UUID
	WalletID      uuid.UUID
	WalletAmount  decimal.Decimal
	GatewayAmount decimal.Decimal
}

// AlrajhiPaymentDetail snapshots the gateway's callback identifiers.
type AlrajhiPaymentDetail struct {
	PaymentID        uuid.UUID
	GatewayPaymentID string
	TranID           string
	TrackID          string
	Reference        string
	Amount           decimal.Decimal
}

// TamaraPaymentDetail snapshots the BNPL order and capture identifiers.
type TamaraPaymentDetail struct {
	PaymentID     uuid.UUID
	TamaraOrderID string
	CheckoutID    string
	CaptureID     string
	Amount        decimal.Decimal
}

// AlrajhiPage is a hosted payment page issued to the customer. Amount
// is the quote at issue time; the callback is rejected if the captured
// amount is below it or the page has expired.
type AlrajhiPage struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	PageID       string // gateway page identifier
	TrackID      string
	URL          string
	Amount       decimal.Decimal
	WalletAmount decimal.Decimal // portion to debit from wallet at callback
	OfferID      uuid.UUID       // zero when no offer was applied
	Active       bool
	CreatedAt    time.Time
}

// Expired reports whether the page fell outside its validity window.
func (p AlrajhiPage) Expired(now time.Time, ttl time.Duration) bool {
	return now.After(p.CreatedAt.Add(ttl))
}

// TamaraPage is a pending BNPL checkout session.
type TamaraPage struct {
	ID            uuid.UUID
	OrderID       uuid.UUID
	TamaraOrderID string
	CheckoutID    string
	URL           string
	Amount        decimal.Decimal
	OfferID       uuid.UUID
	Active        bool
	CreatedAt     time.Time
}
