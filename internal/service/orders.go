package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/care-sa/booking/internal/entity"
	"github.com/care-sa/booking/internal/repository"
	"github.com/care-sa/booking/pkg/broker"
)

type CreateOrderItemParams struct {
	ServiceID      uuid.UUID
	Quantity       uint32
	AvailabilityID uuid.UUID   // zero for an unscheduled booking
	Slot           entity.Slot // required when AvailabilityID is set
}

type CreateOrderParams struct {
	AddressID   uuid.UUID
	PaymentType entity.PaymentType
	Items       []CreateOrderItemParams
}

// CreateOrder books the requested items for the calling customer. Item
// prices and rates are frozen from the catalog; scheduled items must
// name a currently free slot of the availability window.
func (s *Service) CreateOrder(ctx context.Context, params CreateOrderParams) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	if len(params.Items) == 0 {
		return entity.Order{}, fmt.Errorf("%w: order has no items", entity.ErrInvalidArgument)
	}

	err = params.PaymentType.Validate()
	if err != nil {
		return entity.Order{}, err
	}

	now := time.Now().UTC()

	err = s.repo.EnsureCustomer(ctx, repository.Customer{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		CreatedAt: now,
	})
	if err != nil {
		return entity.Order{}, fmt.Errorf("ensure customer: %w", err)
	}

	order := entity.Order{
		ID:          uuid.Must(uuid.NewV4()),
		CustomerID:  user.ID,
		Status:      entity.OrderStatusPending,
		PaymentType: params.PaymentType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var (
		reservations []entity.Reservation
		needsAddress bool
	)

	for _, p := range params.Items {
		svc, err := s.repo.Service(ctx, p.ServiceID)
		if err != nil {
			return entity.Order{}, fmt.Errorf("get service %s: %w", p.ServiceID, err)
		}

		if !svc.Active {
			return entity.Order{}, fmt.Errorf("%w: service %s is not active", entity.ErrInvalidArgument, svc.ID)
		}

		if order.VendorID == uuid.Nil {
			order.VendorID = svc.VendorID
			order.TaxPct = svc.TaxPct
		}

		if svc.VendorID != order.VendorID {
			return entity.Order{}, fmt.Errorf("%w: items span multiple vendors", entity.ErrInvalidArgument)
		}

		if !svc.TaxPct.Equal(order.TaxPct) {
			return entity.Order{}, fmt.Errorf("%w: items mix tax rates", entity.ErrInvalidArgument)
		}

		if svc.Place == entity.ServicePlaceHome {
			needsAddress = true
		}

		quantity := p.Quantity
		if quantity == 0 {
			quantity = 1
		}

		item := entity.OrderItem{
			ID:          uuid.Must(uuid.NewV4()),
			OrderID:     order.ID,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.Price,
			DiscountPct: svc.DiscountPct,
			TaxPct:      svc.TaxPct,
			Quantity:    quantity,
		}

		if p.AvailabilityID != uuid.Nil {
			res, err := s.scheduleItem(ctx, &item, svc, p)
			if err != nil {
				return entity.Order{}, err
			}

			reservations = append(reservations, res)
		}

		order.Items = append(order.Items, item)
	}

	if needsAddress {
		if params.AddressID == uuid.Nil {
			return entity.Order{}, entity.ErrAddressRequired
		}

		address, err := s.repo.Address(ctx, params.AddressID)
		if err != nil {
			return entity.Order{}, fmt.Errorf("get address %s: %w", params.AddressID, err)
		}

		if address.UserID != user.ID {
			return entity.Order{}, entity.ErrForbidden
		}

		order.AddressID = address.ID
	}

	err = s.repo.CreateOrder(ctx, order, reservations)
	if err != nil {
		return entity.Order{}, fmt.Errorf("create order: %w", err)
	}

	slog.InfoContext(ctx, "order created",
		"order_id", order.ID, "vendor_id", order.VendorID, "items", len(order.Items))

	s.producer.SendOrderEvent(ctx, broker.OrderEvent{
		Type:       broker.EventOrderCreated,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		VendorID:   order.VendorID,
		Status:     order.Status.String(),
	})

	return order, nil
}

// scheduleItem validates the requested slot against the availability's
// current free list and fills the item's booking fields. The slot must
// be reproduced verbatim by the generator; the reservation index is the
// final arbiter under concurrency.
func (s *Service) scheduleItem(
	ctx context.Context,
	item *entity.OrderItem,
	svc entity.Service,
	p CreateOrderItemParams,
) (entity.Reservation, error) {
	avail, err := s.repo.Availability(ctx, p.AvailabilityID)
	if err != nil {
		return entity.Reservation{}, fmt.Errorf("get availability %s: %w", p.AvailabilityID, err)
	}

	if avail.ServiceID != svc.ID {
		return entity.Reservation{}, fmt.Errorf("%w: availability %s is not for service %s",
			entity.ErrInvalidArgument, avail.ID, svc.ID)
	}

	reserved, err := s.repo.ReservedSlots(ctx, avail)
	if err != nil {
		return entity.Reservation{}, fmt.Errorf("get reserved slots: %w", err)
	}

	free := entity.FreeSlots(avail.Window(), svc.Duration, reserved)

	found := false
	for _, slot := range free {
		if slot.Equal(p.Slot) {
			found = true
			break
		}
	}

	if !found {
		return entity.Reservation{}, fmt.Errorf("slot %s: %w", p.Slot, entity.ErrSlotTaken)
	}

	item.EmployeeID = avail.EmployeeID
	item.Date = avail.Date
	item.Slot = p.Slot

	return entity.Reservation{
		ID:          uuid.Must(uuid.NewV4()),
		OrderItemID: item.ID,
		ServiceID:   svc.ID,
		EmployeeID:  avail.EmployeeID,
		Date:        avail.Date,
		Slot:        p.Slot,
		Active:      false,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (s *Service) Order(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	order, err := s.repo.Order(ctx, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	if order.CustomerID != user.ID && !(user.Type == entity.UserTypeVendor && order.VendorID == user.VendorID) {
		return entity.Order{}, entity.ErrForbidden
	}

	return order, nil
}

func (s *Service) Orders(ctx context.Context, f entity.OrderFilter) ([]entity.Order, int, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, 0, err
	}

	orders, total, err := s.repo.Orders(ctx, user.ID, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list orders: %w", err)
	}

	return orders, total, nil
}

// ApproveOrder accepts a pending order and starts holding its slots.
func (s *Service) ApproveOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.vendorOrder(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(entity.OrderStatusApproval) {
		return fmt.Errorf("order %s is %s: %w", id, order.Status, entity.ErrOrderState)
	}

	// Take the slots before flipping the status: a lost race surfaces
	// here as ErrSlotTaken and the order stays pending.
	err = s.repo.SetOrderReservations(ctx, id, true)
	if err != nil {
		return fmt.Errorf("activate reservations: %w", err)
	}

	err = s.repo.UpdateOrderStatus(ctx, id, order.Status, entity.OrderStatusApproval, time.Now().UTC())
	if err != nil {
		if relErr := s.repo.SetOrderReservations(ctx, id, false); relErr != nil {
			slog.ErrorContext(ctx, "release reservations after failed approval", "order_id", id, "error", relErr)
		}

		return fmt.Errorf("update order status: %w", err)
	}

	slog.InfoContext(ctx, "order approved", "order_id", id)

	s.producer.SendOrderEvent(ctx, broker.OrderEvent{
		Type:       broker.EventOrderApproved,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		VendorID:   order.VendorID,
		Status:     entity.OrderStatusApproval.String(),
	})

	return nil
}

// DisapproveOrder rejects a pending or approved-but-unpaid order and
// frees its slots.
func (s *Service) DisapproveOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.vendorOrder(ctx, id)
	if err != nil {
		return err
	}

	if !order.Status.CanTransition(entity.OrderStatusDisapproval) {
		return fmt.Errorf("order %s is %s: %w", id, order.Status, entity.ErrOrderState)
	}

	err = s.repo.UpdateOrderStatus(ctx, id, order.Status, entity.OrderStatusDisapproval, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	err = s.repo.SetOrderReservations(ctx, id, false)
	if err != nil {
		return fmt.Errorf("release reservations: %w", err)
	}

	// A rejected order can no longer be paid through a page that was
	// already issued.
	err = s.repo.DeactivateOrderPages(ctx, id)
	if err != nil {
		return fmt.Errorf("deactivate payment pages: %w", err)
	}

	slog.InfoContext(ctx, "order disapproved", "order_id", id)

	s.producer.SendOrderEvent(ctx, broker.OrderEvent{
		Type:       broker.EventOrderDisapproved,
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		VendorID:   order.VendorID,
		Status:     entity.OrderStatusDisapproval.String(),
	})

	return nil
}

// CompleteOrder closes the order after the service was delivered. Paid
// platform orders complete from PAYMENT; vendor-settled orders complete
// straight from APPROVAL.
func (s *Service) CompleteOrder(ctx context.Context, id uuid.UUID) error {
	order, err := s.vendorOrder(ctx, id)
	if err != nil {
		return err
	}

	from := entity.OrderStatusPayment
	if order.PaymentType == entity.PaymentTypeVendor {
		from = entity.OrderStatusApproval
	}

	if order.Status != from {
		return fmt.Errorf("order %s is %s: %w", id, order.Status, entity.ErrOrderState)
	}

	err = s.repo.UpdateOrderStatus(ctx, id, from, entity.OrderStatusCompleted, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}

	slog.InfoContext(ctx, "order completed", "order_id", id)

	return nil
}

// vendorOrder loads the order and checks the caller manages its vendor.
func (s *Service) vendorOrder(ctx context.Context, id uuid.UUID) (entity.Order, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Order{}, err
	}

	order, err := s.repo.Order(ctx, id)
	if err != nil {
		return entity.Order{}, fmt.Errorf("get order %s: %w", id, err)
	}

	if user.Type != entity.UserTypeVendor || order.VendorID != user.VendorID {
		return entity.Order{}, entity.ErrForbidden
	}

	return order, nil
}
