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

func (r *Repository) CreateAlrajhiPage(ctx context.Context, p entity.AlrajhiPage) error {
	const q = `
	INSERT INTO alrajhi_pages (id, order_id, page_id, track_id, url, amount, wallet_amount, offer_id, active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.OrderID,
		p.PageID,
		p.TrackID,
		p.URL,
		p.Amount,
		p.WalletAmount,
		zeronull.UUID(p.OfferID),
		p.Active,
		p.CreatedAt,
	)

	return err
}

// ActiveAlrajhiPage looks up an active page by the gateway identifiers,
// ignoring pages created before notBefore (expired ones).
func (r *Repository) ActiveAlrajhiPage(ctx context.Context, pageID, trackID string, notBefore time.Time) (entity.AlrajhiPage, error) {
	const q = `SELECT
		id, order_id, page_id, track_id, url, amount, wallet_amount, offer_id, active, created_at
	FROM alrajhi_pages
	WHERE page_id = $1 AND track_id = $2 AND active AND created_at >= $3`

	var p entity.AlrajhiPage

	err := r.db.QueryRow(ctx, q, pageID, trackID, notBefore).Scan(
		&p.ID,
		&p.OrderID,
		&p.PageID,
		&p.TrackID,
		&p.URL,
		&p.Amount,
		&p.WalletAmount,
		(*zeronull.UUID)(&p.OfferID),
		&p.Active,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.AlrajhiPage{}, entity.ErrNotFound
		}

		return entity.AlrajhiPage{}, err
	}

	return p, nil
}

func (r *Repository) CreateTamaraPage(ctx context.Context, p entity.TamaraPage) error {
	const q = `
	INSERT INTO tamara_pages (id, order_id, tamara_order_id, checkout_id, url, amount, offer_id, active, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(
		ctx,
		q,
		p.ID,
		p.OrderID,
		p.TamaraOrderID,
		p.CheckoutID,
		p.URL,
		p.Amount,
		zeronull.UUID(p.OfferID),
		p.Active,
		p.CreatedAt,
	)

	return err
}

func (r *Repository) ActiveTamaraPage(ctx context.Context, tamaraOrderID string) (entity.TamaraPage, error) {
	const q = `SELECT
		id, order_id, tamara_order_id, checkout_id, url, amount, offer_id, active, created_at
	FROM tamara_pages
	WHERE tamara_order_id = $1 AND active`

	var p entity.TamaraPage

	err := r.db.QueryRow(ctx, q, tamaraOrderID).Scan(
		&p.ID,
		&p.OrderID,
		&p.TamaraOrderID,
		&p.CheckoutID,
		&p.URL,
		&p.Amount,
		(*zeronull.UUID)(&p.OfferID),
		&p.Active,
		&p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.TamaraPage{}, entity.ErrNotFound
		}

		return entity.TamaraPage{}, err
	}

	return p, nil
}

// PendingTamaraPages lists active checkout pages created before the
// cutoff, oldest first.
func (r *Repository) PendingTamaraPages(ctx context.Context, cutoff time.Time) ([]entity.TamaraPage, error) {
	const q = `SELECT
		id, order_id, tamara_order_id, checkout_id, url, amount, offer_id, active, created_at
	FROM tamara_pages
	WHERE active AND created_at < $1
	ORDER BY created_at`

	rows, err := r.db.Query(ctx, q, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []entity.TamaraPage

	for rows.Next() {
		var p entity.TamaraPage

		err = rows.Scan(
			&p.ID,
			&p.OrderID,
			&p.TamaraOrderID,
			&p.CheckoutID,
			&p.URL,
			&p.Amount,
			(*zeronull.UUID)(&p.OfferID),
			&p.Active,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		pages = append(pages, p)
	}

	return pages, rows.Err()
}

// DeactivateStalePages disables payment pages older than the cutoff so
// late gateway callbacks cannot settle against them.
func (r *Repository) DeactivateStalePages(ctx context.Context, cutoff time.Time) (int64, error) {
	var total int64

	for _, q := range []string{
		`UPDATE alrajhi_pages SET active = false WHERE active AND created_at < $1`,
		`UPDATE tamara_pages SET active = false WHERE active AND created_at < $1`,
	} {
		result, err := r.db.Exec(ctx, q, cutoff)
		if err != nil {
			return total, err
		}

		total += result.RowsAffected()
	}

	return total, nil
}

func (r *Repository) DeactivateOrderPages(ctx context.Context, orderID uuid.UUID) error {
	for _, q := range []string{
		`UPDATE alrajhi_pages SET active = false WHERE order_id = $1`,
		`UPDATE tamara_pages SET active = false WHERE order_id = $1`,
	} {
		_, err := r.db.Exec(ctx, q, orderID)
		if err != nil {
			return err
		}
	}

	return nil
}
