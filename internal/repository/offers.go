package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype/zeronull"

	"github.com/care-sa/booking/internal/entity"
)

const selectOffer = `SELECT
		o.id,
		o.vendor_id,
		o.type,
		o.code,
		o.discount_pct,
		o.uses,
		(SELECT COUNT(*) FROM offer_redemptions r WHERE r.offer_id = o.id) AS redeemed,
		o.active,
		o.expires_at,
		o.created_at
	FROM offers o`

func (r *Repository) OfferByCode(ctx context.Context, code string) (entity.Offer, error) {
	q := selectOffer + " WHERE o.code = $1 AND o.deleted_at IS NULL"
	return scanOffer(r.db.QueryRow(ctx, q, code))
}

func (r *Repository) Offer(ctx context.Context, id uuid.UUID) (entity.Offer, error) {
	q := selectOffer + " WHERE o.id = $1 AND o.deleted_at IS NULL"
	return scanOffer(r.db.QueryRow(ctx, q, id))
}

// OfferRedeemedBy reports whether the user has already redeemed the offer.
func (r *Repository) OfferRedeemedBy(ctx context.Context, offerID, userID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM offer_redemptions WHERE offer_id = $1 AND user_id = $2)`

	var redeemed bool

	err := r.db.QueryRow(ctx, q, offerID, userID).Scan(&redeemed)
	if err != nil {
		return false, err
	}

	return redeemed, nil
}

func (r *Repository) CreateOffer(ctx context.Context, o entity.Offer) error {
	const q = `
	INSERT INTO offers (id, vendor_id, type, code, discount_pct, uses, active, expires_at, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		o.ID,
		zeronull.UUID(o.VendorID),
		o.Type,
		o.Code,
		o.DiscountPct,
		o.Uses,
		o.Active,
		zeronull.Timestamptz(o.ExpiresAt),
		o.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.ErrInvalidArgument
		}

		return err
	}

	return nil
}

func (r *Repository) ActivateOffer(ctx context.Context, id uuid.UUID) error {
	const q = `UPDATE offers SET active = true WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

// ActiveOffers lists redeemable offers for the vendor: the vendor's own
// plus platform-wide ones, all active, unexpired and under budget.
func (r *Repository) ActiveOffers(ctx context.Context, vendorID uuid.UUID, now time.Time) ([]entity.Offer, error) {
	q := selectOffer + `
	WHERE o.deleted_at IS NULL
	  AND o.active
	  AND (o.expires_at IS NULL OR o.expires_at > $2)
	  AND (o.vendor_id = $1 OR o.type = 'admin')
	  AND (SELECT COUNT(*) FROM offer_redemptions r WHERE r.offer_id = o.id) < o.uses
	ORDER BY o.created_at DESC`

	rows, err := r.db.Query(ctx, q, vendorID, now)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var offers []entity.Offer

	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}

		offers = append(offers, offer)
	}

	return offers, rows.Err()
}

func scanOffer(row pgx.Row) (o entity.Offer, err error) {
	err = row.Scan(
		&o.ID,
		(*zeronull.UUID)(&o.VendorID),
		&o.Type,
		&o.Code,
		&o.DiscountPct,
		&o.Uses,
		&o.Redeemed,
		&o.Active,
		(*zeronull.Timestamptz)(&o.ExpiresAt),
		&o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Offer{}, entity.ErrNotFound
		}

		return entity.Offer{}, err
	}

	return o, nil
}
