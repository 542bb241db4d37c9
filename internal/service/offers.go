package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/care-sa/booking/internal/entity"
)

type CreateOfferParams struct {
	Code        string
	DiscountPct decimal.Decimal
	Uses        uint32
	ExpiresAt   time.Time
}

// CreateOffer registers a discount code. Vendor offers go live
// immediately; admin offers start inactive and are enabled separately.
func (s *Service) CreateOffer(ctx context.Context, params CreateOfferParams) (entity.Offer, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Offer{}, err
	}

	offer := entity.Offer{
		ID:          uuid.Must(uuid.NewV4()),
		Code:        entity.NormalizeOfferCode(params.Code),
		DiscountPct: params.DiscountPct,
		Uses:        params.Uses,
		ExpiresAt:   params.ExpiresAt,
		CreatedAt:   time.Now().UTC(),
	}

	switch user.Type {
	case entity.UserTypeVendor:
		offer.Type = entity.OfferTypeVendor
		offer.VendorID = user.VendorID
		offer.Active = true
	case entity.UserTypeAdmin:
		offer.Type = entity.OfferTypeAdmin
		offer.Active = false
	default:
		return entity.Offer{}, entity.ErrForbidden
	}

	if offer.Code == "" {
		return entity.Offer{}, fmt.Errorf("%w: empty offer code", entity.ErrInvalidArgument)
	}

	if offer.DiscountPct.LessThanOrEqual(decimal.Zero) || offer.DiscountPct.GreaterThan(decimal.New(100, 0)) {
		return entity.Offer{}, fmt.Errorf("%w: discount must be in (0, 100]", entity.ErrInvalidArgument)
	}

	if offer.Uses == 0 {
		return entity.Offer{}, fmt.Errorf("%w: offer must allow at least one use", entity.ErrInvalidArgument)
	}

	if !offer.ExpiresAt.After(offer.CreatedAt) {
		return entity.Offer{}, fmt.Errorf("%w: offer expiry is in the past", entity.ErrInvalidArgument)
	}

	err = s.repo.CreateOffer(ctx, offer)
	if err != nil {
		return entity.Offer{}, fmt.Errorf("create offer: %w", err)
	}

	slog.InfoContext(ctx, "offer created", "offer_id", offer.ID, "code", offer.Code, "type", offer.Type)

	return offer, nil
}

// ActivateOffer enables an admin offer.
func (s *Service) ActivateOffer(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if user.Type != entity.UserTypeAdmin {
		return entity.ErrForbidden
	}

	err = s.repo.ActivateOffer(ctx, id)
	if err != nil {
		return fmt.Errorf("activate offer %s: %w", id, err)
	}

	return nil
}

// VerifyOffer checks the code against the order and returns the offer
// with the discounted breakdown for display. Nothing is redeemed here:
// redemption happens atomically at settlement.
func (s *Service) VerifyOffer(ctx context.Context, orderID uuid.UUID, code string) (entity.Offer, entity.Pricing, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Offer{}, entity.Pricing{}, err
	}

	order, err := s.repo.Order(ctx, orderID)
	if err != nil {
		return entity.Offer{}, entity.Pricing{}, fmt.Errorf("get order %s: %w", orderID, err)
	}

	if order.CustomerID != user.ID {
		return entity.Offer{}, entity.Pricing{}, entity.ErrForbidden
	}

	offer, err := s.verifiedOffer(ctx, order, code)
	if err != nil {
		return entity.Offer{}, entity.Pricing{}, err
	}

	return offer, order.Total(offer.DiscountPct), nil
}

// verifiedOffer resolves the code and runs every redeemability check
// against the order, including the per-customer one.
func (s *Service) verifiedOffer(ctx context.Context, order entity.Order, code string) (entity.Offer, error) {
	offer, err := s.repo.OfferByCode(ctx, entity.NormalizeOfferCode(code))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Offer{}, fmt.Errorf("code %q: %w", code, entity.ErrInvalidOffer)
		}

		return entity.Offer{}, fmt.Errorf("get offer by code: %w", err)
	}

	if !offer.Redeemable(order.VendorID, time.Now().UTC()) {
		return entity.Offer{}, fmt.Errorf("code %q: %w", code, entity.ErrInvalidOffer)
	}

	redeemed, err := s.repo.OfferRedeemedBy(ctx, offer.ID, order.CustomerID)
	if err != nil {
		return entity.Offer{}, fmt.Errorf("check offer redemption: %w", err)
	}

	if redeemed {
		return entity.Offer{}, fmt.Errorf("code %q already redeemed: %w", code, entity.ErrInvalidOffer)
	}

	return offer, nil
}

// ActiveOffers lists the offers currently usable against the vendor's
// orders: the vendor's own plus platform-wide admin offers.
func (s *Service) ActiveOffers(ctx context.Context, vendorID uuid.UUID) ([]entity.Offer, error) {
	offers, err := s.repo.ActiveOffers(ctx, vendorID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list active offers: %w", err)
	}

	return offers, nil
}
