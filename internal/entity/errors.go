package entity

import (
	"errors"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyPaid       = errors.New("already paid")
	ErrOrderState        = errors.New("invalid order state")
	ErrSlotTaken         = errors.New("slot already reserved")
	ErrInsufficientFunds = errors.New("insufficient wallet funds")
	ErrInvalidOffer      = errors.New("invalid offer")
	ErrAddressRequired   = errors.New("address required")
	ErrPaymentPage       = errors.New("invalid payment page")
	ErrAmountMismatch    = errors.New("paid amount mismatch")
	ErrPayViaWallet      = errors.New("wallet balance covers the total")
)
