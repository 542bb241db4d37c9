package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/care-sa/booking/internal/entity"
)

// Settlement bundles everything a successful payment writes. Settle
// applies it atomically: either the order is paid, invoiced, debited
// and the offer redeemed, or none of it happened.
type Settlement struct {
	Order     entity.Order
	Invoice   entity.Invoice // Year and AnnualFigure are assigned here
	LineItems []entity.InvoiceLineItem
	Payment   entity.Payment

	// optional parts, nil when not applicable
	OfferID       *uuid.UUID
	WalletDebit   *entity.WalletTransaction
	WalletDetail  *entity.WalletPaymentDetail
	AlrajhiDetail *entity.AlrajhiPaymentDetail
	TamaraDetail  *entity.TamaraPaymentDetail
	BackCash      *entity.WalletTransaction

	Now time.Time
}

func (r *Repository) Settle(ctx context.Context, s Settlement) (entity.Invoice, error) {
	invoice := s.Invoice

	err := r.inTx(ctx, func(tx pgx.Tx) error {
		// Compare-and-swap the status first: a concurrent settlement of
		// the same order loses here and rolls back untouched.
		const casOrder = `
		UPDATE orders SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4 AND deleted_at IS NULL
		`

		result, err := tx.Exec(ctx, casOrder, entity.OrderStatusPayment, s.Now, s.Order.ID, entity.OrderStatusApproval)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		if result.RowsAffected() == 0 {
			return entity.ErrAlreadyPaid
		}

		invoice.Year, invoice.AnnualFigure, err = nextInvoiceNumber(ctx, tx, s.Now)
		if err != nil {
			return err
		}

		err = insertInvoice(ctx, tx, invoice, s.LineItems)
		if err != nil {
			return err
		}

		if s.WalletDebit != nil {
			err = withdraw(ctx, tx, *s.WalletDebit)
			if err != nil {
				return err
			}
		}

		err = insertPayment(ctx, tx, s.Payment)
		if err != nil {
			return err
		}

		err = insertPaymentDetail(ctx, tx, s)
		if err != nil {
			return err
		}

		if s.OfferID != nil {
			err = redeemOffer(ctx, tx, *s.OfferID, s.Order.CustomerID, s.Now)
			if err != nil {
				return err
			}
		}

		if s.BackCash != nil {
			err = deposit(ctx, tx, *s.BackCash)
			if err != nil {
				return err
			}
		}

		// Late gateway callbacks must not settle this order again.
		for _, q := range []string{
			`UPDATE alrajhi_pages SET active = false WHERE order_id = $1`,
			`UPDATE tamara_pages SET active = false WHERE order_id = $1`,
		} {
			_, err = tx.Exec(ctx, q, s.Order.ID)
			if err != nil {
				return fmt.Errorf("deactivate pages: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return entity.Invoice{}, err
	}

	return invoice, nil
}

// nextInvoiceNumber bumps the per-year counter and returns the new
// value. The upsert serializes concurrent settlements on the year row,
// so numbers are dense and never reused.
func nextInvoiceNumber(ctx context.Context, tx pgx.Tx, now time.Time) (int, int64, error) {
	const q = `
	INSERT INTO invoice_counters (year, value) VALUES ($1, 1)
	ON CONFLICT (year) DO UPDATE SET value = invoice_counters.value + 1
	RETURNING value
	`

	year := now.UTC().Year()

	var figure int64

	err := tx.QueryRow(ctx, q, year).Scan(&figure)
	if err != nil {
		return 0, 0, fmt.Errorf("bump invoice counter: %w", err)
	}

	return year, figure, nil
}

func insertInvoice(ctx context.Context, tx pgx.Tx, inv entity.Invoice, items []entity.InvoiceLineItem) error {
	const insertInv = `
	INSERT INTO invoices (id, order_id, customer_id, vendor_id, year, annual_figure, price, discount_val, tax_value, total, offer_code, status, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := tx.Exec(
		ctx,
		insertInv,
		inv.ID,
		inv.OrderID,
		inv.CustomerID,
		inv.VendorID,
		inv.Year,
		inv.AnnualFigure,
		inv.Price,
		inv.DiscountVal,
		inv.TaxValue,
		inv.Total,
		inv.OfferCode,
		inv.Status,
		inv.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrAlreadyPaid
		}

		return fmt.Errorf("insert invoice: %w", err)
	}

	const insertItem = `
	INSERT INTO invoice_line_items (id, invoice_id, service_name, employee_name, price, discount_pct, tax_pct, quantity, date)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	for _, item := range items {
		_, err = tx.Exec(
			ctx,
			insertItem,
			item.ID,
			inv.ID,
			item.ServiceName,
			item.EmployeeName,
			item.Price,
			item.DiscountPct,
			item.TaxPct,
			item.Quantity,
			zeronull.Timestamptz(item.Date),
		)
		if err != nil {
			return fmt.Errorf("insert invoice line item: %w", err)
		}
	}

	return nil
}

func insertPayment(ctx context.Context, tx pgx.Tx, p entity.Payment) error {
	const q = `
	INSERT INTO payments (id, order_id, invoice_id, provider, amount, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := tx.Exec(ctx, q, p.ID, p.OrderID, p.InvoiceID, p.Provider, p.Amount, p.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrAlreadyPaid
		}

		return fmt.Errorf("insert payment: %w", err)
	}

	return nil
}

// A split payment carries both a wallet and a gateway detail, so each
// non-nil detail gets its own row.
func insertPaymentDetail(ctx context.Context, tx pgx.Tx, s Settlement) error {
	if s.WalletDetail != nil {
		const q = `
		INSERT INTO wallet_payments (payment_id, wallet_id, wallet_amount, gateway_amount)
		VALUES ($1, $2, $3, $4)
		`

		_, err := tx.Exec(ctx, q, s.WalletDetail.PaymentID, s.WalletDetail.WalletID, s.WalletDetail.WalletAmount, s.WalletDetail.GatewayAmount)
		if err != nil {
			return fmt.Errorf("insert wallet payment: %w", err)
		}
	}

	if s.AlrajhiDetail != nil {
		const q = `
		INSERT INTO alrajhi_payments (payment_id, gateway_payment_id, tran_id, track_id, reference, amount)
		VALUES ($1, $2, $3, $4, $5, $6)
		`

		d := s.AlrajhiDetail

		_, err := tx.Exec(ctx, q, d.PaymentID, d.GatewayPaymentID, d.TranID, d.TrackID, d.Reference, d.Amount)
		if err != nil {
			return fmt.Errorf("insert alrajhi payment: %w", err)
		}
	}

	if s.TamaraDetail != nil {
		const q = `
		INSERT INTO tamara_payments (payment_id, tamara_order_id, checkout_id, capture_id, amount)
		VALUES ($1, $2, $3, $4, $5)
		`

		d := s.TamaraDetail

		_, err := tx.Exec(ctx, q, d.PaymentID, d.TamaraOrderID, d.CheckoutID, d.CaptureID, d.Amount)
		if err != nil {
			return fmt.Errorf("insert tamara payment: %w", err)
		}
	}

	return nil
}

// redeemOffer records the redemption; the primary key keeps an offer
// single-use per customer even under concurrent settlements.
func redeemOffer(ctx context.Context, tx pgx.Tx, offerID, userID uuid.UUID, now time.Time) error {
	const q = `INSERT INTO offer_redemptions (offer_id, user_id, created_at) VALUES ($1, $2, $3)`

	_, err := tx.Exec(ctx, q, offerID, userID, now)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrInvalidOffer
		}

		return fmt.Errorf("redeem offer: %w", err)
	}

	return nil
}
