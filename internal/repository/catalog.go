package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/care-sa/booking/internal/entity"
)

func (r *Repository) Service(ctx context.Context, id uuid.UUID) (entity.Service, error) {
	const q = `SELECT
		id,
		vendor_id,
		name,
		description,
		price,
		discount_pct,
		tax_pct,
		duration_sec,
		place,
		active,
		created_at
	FROM services WHERE id = $1 AND deleted_at IS NULL`

	var (
		s           entity.Service
		durationSec int64
	)

	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID,
		&s.VendorID,
		&s.Name,
		&s.Description,
		&s.Price,
		&s.DiscountPct,
		&s.TaxPct,
		&durationSec,
		&s.Place,
		&s.Active,
		&s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Service{}, entity.ErrNotFound
		}

		return entity.Service{}, err
	}

	s.Duration = time.Duration(durationSec) * time.Second

	return s, nil
}

func (r *Repository) Employee(ctx context.Context, id uuid.UUID) (entity.Employee, error) {
	const q = `SELECT id, vendor_id, name, active FROM employees WHERE id = $1 AND deleted_at IS NULL`

	var e entity.Employee

	err := r.db.QueryRow(ctx, q, id).Scan(&e.ID, &e.VendorID, &e.Name, &e.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Employee{}, entity.ErrNotFound
		}

		return entity.Employee{}, err
	}

	return e, nil
}

func (r *Repository) Address(ctx context.Context, id uuid.UUID) (entity.Address, error) {
	const q = `SELECT id, user_id, label, city, district, street, lat, lng
	FROM addresses WHERE id = $1 AND deleted_at IS NULL`

	var a entity.Address

	err := r.db.QueryRow(ctx, q, id).Scan(
		&a.ID, &a.UserID, &a.Label, &a.City, &a.District, &a.Street, &a.Lat, &a.Lng,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Address{}, entity.ErrNotFound
		}

		return entity.Address{}, err
	}

	return a, nil
}

func (r *Repository) Availability(ctx context.Context, id uuid.UUID) (entity.Availability, error) {
	q := selectAvailability + " WHERE id = $1 AND deleted_at IS NULL"
	return scanAvailability(r.db.QueryRow(ctx, q, id))
}

const selectAvailability = `SELECT
		id,
		service_id,
		employee_id,
		date,
		start_at,
		end_at,
		created_at
	FROM availabilities`

func (r *Repository) CreateAvailability(ctx context.Context, a entity.Availability) error {
	const q = `
	INSERT INTO availabilities (id, service_id, employee_id, date, start_at, end_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		a.ID,
		a.ServiceID,
		zeronull.UUID(a.EmployeeID),
		a.Date,
		a.Start,
		a.End,
		a.CreatedAt,
	)

	return err
}

// HasOverlappingAvailability reports whether another window already
// intersects [start, end) on the date, for the same employee when set,
// otherwise for the same service at large.
func (r *Repository) HasOverlappingAvailability(
	ctx context.Context,
	serviceID, employeeID uuid.UUID,
	date time.Time,
	start, end time.Time,
) (bool, error) {
	const q = `
	SELECT EXISTS (
		SELECT 1 FROM availabilities
		WHERE date = $1
		  AND deleted_at IS NULL
		  AND NOT (start_at >= $3 OR end_at <= $2)
		  AND CASE
			WHEN $5::uuid IS NOT NULL THEN employee_id = $5
			ELSE service_id = $4 AND employee_id IS NULL
		  END
	)
	`

	var exists bool

	err := r.db.QueryRow(ctx, q, date, start, end, serviceID, zeronull.UUID(employeeID)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("query overlap: %w", err)
	}

	return exists, nil
}

// ReservedSlots returns the active reservation intervals contending
// with the availability on its date: the employee's when the window is
// employee-bound, otherwise the service-wide ones.
func (r *Repository) ReservedSlots(ctx context.Context, a entity.Availability) ([]entity.Slot, error) {
	const q = `
	SELECT start_at, end_at FROM reservations
	WHERE active
	  AND date = $1
	  AND CASE
		WHEN $3::uuid IS NOT NULL THEN employee_id = $3
		ELSE service_id = $2 AND employee_id IS NULL
	  END
	`

	rows, err := r.db.Query(ctx, q, a.Date, a.ServiceID, zeronull.UUID(a.EmployeeID))
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var slots []entity.Slot

	for rows.Next() {
		var s entity.Slot

		err = rows.Scan(&s.Start, &s.End)
		if err != nil {
			return nil, err
		}

		slots = append(slots, s)
	}

	return slots, rows.Err()
}

func scanAvailability(row pgx.Row) (a entity.Availability, err error) {
	err = row.Scan(
		&a.ID,
		&a.ServiceID,
		(*zeronull.UUID)(&a.EmployeeID),
		&a.Date,
		&a.Start,
		&a.End,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Availability{}, entity.ErrNotFound
		}

		return entity.Availability{}, err
	}

	return a, nil
}
