package repository

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/care-sa/booking/internal/entity"
)

const selectInvoice = `SELECT
		id,
		order_id,
		customer_id,
		vendor_id,
		year,
		annual_figure,
		price,
		discount_val,
		tax_value,
		total,
		offer_code,
		status,
		created_at
	FROM invoices`

func (r *Repository) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE id = $1"

	inv, err := scanInvoice(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.LineItems, err = r.invoiceLineItems(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("load line items: %w", err)
	}

	return inv, nil
}

func (r *Repository) InvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (entity.Invoice, error) {
	q := selectInvoice + " WHERE order_id = $1"

	inv, err := scanInvoice(r.db.QueryRow(ctx, q, orderID))
	if err != nil {
		return entity.Invoice{}, err
	}

	inv.LineItems, err = r.invoiceLineItems(ctx, inv.ID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("load line items: %w", err)
	}

	return inv, nil
}

func (r *Repository) invoiceLineItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceLineItem, error) {
	const q = `SELECT id, invoice_id, service_name, employee_name, price, discount_pct, tax_pct, quantity, date
	FROM invoice_line_items WHERE invoice_id = $1`

	rows, err := r.db.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []entity.InvoiceLineItem

	for rows.Next() {
		var item entity.InvoiceLineItem

		err = rows.Scan(
			&item.ID,
			&item.InvoiceID,
			&item.ServiceName,
			&item.EmployeeName,
			&item.Price,
			&item.DiscountPct,
			&item.TaxPct,
			&item.Quantity,
			(*zeronull.Timestamptz)(&item.Date),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// Invoices lists a customer's invoices newest first, with the total row
// count before paging.
func (r *Repository) Invoices(ctx context.Context, customerID uuid.UUID, page, limit uint64) ([]entity.Invoice, int, error) {
	stmt := sq.Select(
		"id",
		"order_id",
		"customer_id",
		"vendor_id",
		"year",
		"annual_figure",
		"price",
		"discount_val",
		"tax_value",
		"total",
		"offer_code",
		"status",
		"created_at",
		"COUNT(*) OVER() AS total_count",
	).From("invoices").
		Where(sq.Eq{"customer_id": customerID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(pageOffset(page, limit)).
		PlaceholderFormat(sq.Dollar)

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	invoices := make([]entity.Invoice, 0, limit)

	var totalCount int

	for rows.Next() {
		var inv entity.Invoice

		var count int

		err = rows.Scan(
			&inv.ID,
			&inv.OrderID,
			&inv.CustomerID,
			&inv.VendorID,
			&inv.Year,
			&inv.AnnualFigure,
			&inv.Price,
			&inv.DiscountVal,
			&inv.TaxValue,
			&inv.Total,
			&inv.OfferCode,
			&inv.Status,
			&inv.CreatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		invoices = append(invoices, inv)
	}

	return invoices, totalCount, rows.Err()
}

// CancelInvoice marks an issued invoice cancelled. The row itself stays
// immutable otherwise; its annual figure is never reused.
func (r *Repository) CancelInvoice(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE invoices SET status = $1 WHERE id = $2 AND status = $3`

	result, err := r.db.Exec(ctx, q, entity.InvoiceStatusCancelled, id, entity.InvoiceStatusCompleted)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func scanInvoice(row pgx.Row) (inv entity.Invoice, err error) {
	err = row.Scan(
		&inv.ID,
		&inv.OrderID,
		&inv.CustomerID,
		&inv.VendorID,
		&inv.Year,
		&inv.AnnualFigure,
		&inv.Price,
		&inv.DiscountVal,
		&inv.TaxValue,
		&inv.Total,
		&inv.OfferCode,
		&inv.Status,
		&inv.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Invoice{}, entity.ErrNotFound
		}

		return entity.Invoice{}, err
	}

	return inv, nil
}
