package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/care-sa/booking/internal/entity"
)

const selectOrder = `SELECT
		id,
		customer_id,
		vendor_id,
		address_id,
		status,
		payment_type,
		tax_pct,
		created_at,
		updated_at
	FROM orders`

// CreateOrder persists the order with its items and their inactive
// reservations in one transaction.
func (r *Repository) CreateOrder(ctx context.Context, order entity.Order, reservations []entity.Reservation) error {
	const insertOrder = `
	INSERT INTO orders (id, customer_id, vendor_id, address_id, status, payment_type, tax_pct, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	const insertItem = `
	INSERT INTO order_items (id, order_id, service_id, employee_id, service_name, price, discount_pct, tax_pct, quantity, date, start_at, end_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	const insertReservation = `
	INSERT INTO reservations (id, order_item_id, service_id, employee_id, date, start_at, end_at, active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			insertOrder,
			order.ID,
			order.CustomerID,
			order.VendorID,
			zeronull.UUID(order.AddressID),
			order.Status,
			order.PaymentType,
			order.TaxPct,
			order.CreatedAt,
			order.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, item := range order.Items {
			_, err = tx.Exec(
				ctx,
				insertItem,
				item.ID,
				order.ID,
				item.ServiceID,
				zeronull.UUID(item.EmployeeID),
				item.ServiceName,
				item.Price,
				item.DiscountPct,
				item.TaxPct,
				item.Quantity,
				zeronull.Timestamptz(item.Date),
				zeronull.Timestamptz(item.Slot.Start),
				zeronull.Timestamptz(item.Slot.End),
			)
			if err != nil {
				return fmt.Errorf("insert order item: %w", err)
			}
		}

		for _, res := range reservations {
			_, err = tx.Exec(
				ctx,
				insertReservation,
				res.ID,
				res.OrderItemID,
				res.ServiceID,
				zeronull.UUID(res.EmployeeID),
				res.Date,
				res.Slot.Start,
				res.Slot.End,
				res.Active,
				res.CreatedAt,
			)
			if err != nil {
				return fmt.Errorf("insert reservation: %w", err)
			}
		}

		return nil
	})
}

func (r *Repository) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	q := selectOrder + " WHERE id = $1 AND deleted_at IS NULL"

	order, err := scanOrder(r.db.QueryRow(ctx, q, id))
	if err != nil {
		return entity.Order{}, err
	}

	order.Items, err = r.orderItems(ctx, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("load order items: %w", err)
	}

	return order, nil
}

func (r *Repository) orderItems(ctx context.Context, orderID uuid.UUID) ([]entity.OrderItem, error) {
	const q = `SELECT
		id,
		order_id,
		service_id,
		employee_id,
		service_name,
		price,
		discount_pct,
		tax_pct,
		quantity,
		date,
		start_at,
		end_at
	FROM order_items WHERE order_id = $1`

	rows, err := r.db.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []entity.OrderItem

	for rows.Next() {
		var item entity.OrderItem

		err = rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ServiceID,
			(*zeronull.UUID)(&item.EmployeeID),
			&item.ServiceName,
			&item.Price,
			&item.DiscountPct,
			&item.TaxPct,
			&item.Quantity,
			(*zeronull.Timestamptz)(&item.Date),
			(*zeronull.Timestamptz)(&item.Slot.Start),
			(*zeronull.Timestamptz)(&item.Slot.End),
		)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// Orders lists a customer's orders newest first with the filter applied.
// The second return value is the total row count before paging.
func (r *Repository) Orders(ctx context.Context, customerID uuid.UUID, f entity.OrderFilter) ([]entity.Order, int, error) {
	stmt := sq.Select(
		"id",
		"customer_id",
		"vendor_id",
		"address_id",
		"status",
		"payment_type",
		"tax_pct",
		"created_at",
		"updated_at",
		"COUNT(*) OVER() AS total_count",
	).From("orders").
		Where(sq.Eq{"customer_id": customerID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(sq.Dollar)

	if f.Status != nil {
		stmt = stmt.Where(sq.Eq{"status": *f.Status})
	}

	stmt = stmt.
		Limit(f.Limit).
		Offset(pageOffset(f.Page, f.Limit)).
		OrderBy(fmt.Sprintf("%s %s", f.SortBy, f.OrderBy))

	sql, args, err := stmt.ToSql()
	if err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := make([]entity.Order, 0, f.Limit)

	var totalCount int

	for rows.Next() {
		var order entity.Order

		var count int

		err = rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.VendorID,
			(*zeronull.UUID)(&order.AddressID),
			&order.Status,
			&order.PaymentType,
			&order.TaxPct,
			&order.CreatedAt,
			&order.UpdatedAt,
			&count,
		)
		if err != nil {
			return nil, 0, err
		}

		totalCount = count

		orders = append(orders, order)
	}

	return orders, totalCount, rows.Err()
}

// UpdateOrderStatus moves the order from the expected status to the
// next one. ErrOrderState is returned when the order is no longer in
// the expected status, ErrNotFound when it does not exist.
func (r *Repository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to entity.OrderStatus, updatedAt time.Time) error {
	const q = `UPDATE orders SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, q, to, updatedAt, id, from)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		_, err = r.Order(ctx, id)
		if err != nil {
			return err
		}

		return entity.ErrOrderState
	}

	return nil
}

// SetOrderReservations toggles all reservations of the order's items.
// Activation contends on the partial unique slot indexes; a conflict
// means somebody else took one of the slots meanwhile.
func (r *Repository) SetOrderReservations(ctx context.Context, orderID uuid.UUID, active bool) error {
	const q = `
	UPDATE reservations SET active = $1
	WHERE order_item_id IN (SELECT id FROM order_items WHERE order_id = $2)
	`

	_, err := r.db.Exec(ctx, q, active, orderID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrSlotTaken
		}

		return err
	}

	return nil
}

func scanOrder(row pgx.Row) (order entity.Order, err error) {
	err = row.Scan(
		&order.ID,
		&order.CustomerID,
		&order.VendorID,
		(*zeronull.UUID)(&order.AddressID),
		&order.Status,
		&order.PaymentType,
		&order.TaxPct,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Order{}, entity.ErrNotFound
		}

		return entity.Order{}, err
	}

	return order, nil
}
