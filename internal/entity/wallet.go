package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Wallet struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Balance   decimal.Decimal
	UpdatedAt time.Time
}

// CoversAmount reports whether the balance alone can settle the amount.
func (w Wallet) CoversAmount(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

type WalletTxType string

const (
	WalletTxDeposit  WalletTxType = "DEPOSIT"
	WalletTxWithdraw WalletTxType = "WITHDRAW"
	WalletTxBackCash WalletTxType = "BACK_CASH"
)

func (t WalletTxType) String() string {
	return string(t)
}

// WalletTransaction is an append-only audit record. Amount is always
// positive; Type carries the direction.
type WalletTransaction struct {
	ID        uuid.UUID
	WalletID  uuid.UUID
	Type      WalletTxType
	Amount    decimal.Decimal
	OrderID   uuid.UUID // zero for plain deposits
	CreatedAt time.Time
}
