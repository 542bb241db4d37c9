package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/care-sa/booking/internal/entity"
)

type Customer struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

func (r *Repository) Customer(ctx context.Context, id uuid.UUID) (Customer, error) {
	const q = `SELECT id, name, email, phone, created_at FROM customers WHERE id = $1 AND deleted_at IS NULL`

	var c Customer

	err := r.db.QueryRow(ctx, q, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Customer{}, entity.ErrNotFound
		}

		return Customer{}, err
	}

	return c, nil
}

// EnsureCustomer mirrors the auth service's user record locally so
// orders and invoices can reference it.
func (r *Repository) EnsureCustomer(ctx context.Context, c Customer) error {
	const q = `
	INSERT INTO customers (id, name, email, phone, created_at)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, phone = EXCLUDED.phone
	`

	_, err := r.db.Exec(ctx, q, c.ID, c.Name, c.Email, c.Phone, c.CreatedAt)

	return err
}

func (r *Repository) CreateVendor(ctx context.Context, v entity.Vendor) error {
	const q = `INSERT INTO vendors (id, name, email, phone, created_at) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, q, v.ID, v.Name, v.Email, v.Phone, v.CreatedAt)

	return err
}

func (r *Repository) CreateEmployee(ctx context.Context, e entity.Employee) error {
	const q = `INSERT INTO employees (id, vendor_id, name, active) VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, q, e.ID, e.VendorID, e.Name, e.Active)

	return err
}

func (r *Repository) CreateService(ctx context.Context, s entity.Service) error {
	const q = `
	INSERT INTO services (id, vendor_id, name, description, price, discount_pct, tax_pct, duration_sec, place, active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		s.ID,
		s.VendorID,
		s.Name,
		s.Description,
		s.Price,
		s.DiscountPct,
		s.TaxPct,
		int64(s.Duration/time.Second),
		s.Place,
		s.Active,
		s.CreatedAt,
	)

	return err
}

func (r *Repository) CreateAddress(ctx context.Context, a entity.Address) error {
	const q = `
	INSERT INTO addresses (id, user_id, label, city, district, street, lat, lng)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, q, a.ID, a.UserID, a.Label, a.City, a.District, a.Street, a.Lat, a.Lng)

	return err
}
