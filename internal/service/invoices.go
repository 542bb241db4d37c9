package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/care-sa/booking/internal/entity"
)

func (s *Service) Invoice(ctx context.Context, id uuid.UUID) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	invoice, err := s.repo.Invoice(ctx, id)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice %s: %w", id, err)
	}

	err = invoiceVisibleTo(invoice, user)
	if err != nil {
		return entity.Invoice{}, err
	}

	return invoice, nil
}

func (s *Service) InvoiceByOrderID(ctx context.Context, orderID uuid.UUID) (entity.Invoice, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Invoice{}, err
	}

	invoice, err := s.repo.InvoiceByOrderID(ctx, orderID)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("get invoice for order %s: %w", orderID, err)
	}

	err = invoiceVisibleTo(invoice, user)
	if err != nil {
		return entity.Invoice{}, err
	}

	return invoice, nil
}

func (s *Service) Invoices(ctx context.Context, page, limit uint64) ([]entity.Invoice, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	invoices, total, err := s.repo.Invoices(ctx, user.ID, page, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, total, nil
}

// CancelInvoice marks an invoice cancelled for refund handling.
// Admin only; the money movement itself happens outside this service.
func (s *Service) CancelInvoice(ctx context.Context, id uuid.UUID) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if user.Type != entity.UserTypeAdmin {
		return entity.ErrForbidden
	}

	err = s.repo.CancelInvoice(ctx, id)
	if err != nil {
		return fmt.Errorf("cancel invoice %s: %w", id, err)
	}

	slog.InfoContext(ctx, "invoice cancelled", "invoice_id", id)

	return nil
}

func invoiceVisibleTo(invoice entity.Invoice, user entity.User) error {
	if invoice.CustomerID == user.ID {
		return nil
	}

	if user.Type == entity.UserTypeVendor && invoice.VendorID == user.VendorID {
		return nil
	}

	if user.Type == entity.UserTypeAdmin {
		return nil
	}

	return entity.ErrForbidden
}
