package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/care-sa/booking/internal/entity"
)

const maxAvailabilityDays = 90

type CreateAvailabilityParams struct {
	ServiceID  uuid.UUID
	EmployeeID uuid.UUID // zero when the window is not tied to an employee
	Date       time.Time
	Start      time.Time
	End        time.Time
	Days       int // how many consecutive days to publish, starting at Date
}

// CreateAvailability publishes the window for up to maxAvailabilityDays
// consecutive days. Days that would overlap an existing window for the
// same service (or employee) are skipped, not failed: authoring a month
// around a few already-published days is the common case.
func (s *Service) CreateAvailability(ctx context.Context, params CreateAvailabilityParams) ([]entity.Availability, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	if user.Type != entity.UserTypeVendor {
		return nil, entity.ErrForbidden
	}

	if params.Days < 1 || params.Days > maxAvailabilityDays {
		return nil, fmt.Errorf("%w: days must be between 1 and %d", entity.ErrInvalidArgument, maxAvailabilityDays)
	}

	if !params.Start.Before(params.End) {
		return nil, fmt.Errorf("%w: window start must precede end", entity.ErrInvalidArgument)
	}

	svc, err := s.repo.Service(ctx, params.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", params.ServiceID, err)
	}

	if svc.VendorID != user.VendorID {
		return nil, entity.ErrForbidden
	}

	if params.End.Sub(params.Start) < svc.Duration {
		return nil, fmt.Errorf("%w: window is shorter than the service duration", entity.ErrInvalidArgument)
	}

	if params.EmployeeID != uuid.Nil {
		employee, err := s.repo.Employee(ctx, params.EmployeeID)
		if err != nil {
			return nil, fmt.Errorf("get employee %s: %w", params.EmployeeID, err)
		}

		if employee.VendorID != user.VendorID {
			return nil, entity.ErrForbidden
		}

		if !employee.Active {
			return nil, fmt.Errorf("%w: employee %s is not active", entity.ErrInvalidArgument, employee.ID)
		}
	}

	now := time.Now().UTC()
	created := make([]entity.Availability, 0, params.Days)

	for day := 0; day < params.Days; day++ {
		avail := entity.Availability{
			ID:         uuid.Must(uuid.NewV4()),
			ServiceID:  params.ServiceID,
			EmployeeID: params.EmployeeID,
			Date:       params.Date.AddDate(0, 0, day),
			Start:      params.Start.AddDate(0, 0, day),
			End:        params.End.AddDate(0, 0, day),
			CreatedAt:  now,
		}

		overlaps, err := s.repo.HasOverlappingAvailability(
			ctx, avail.ServiceID, avail.EmployeeID, avail.Date, avail.Start, avail.End)
		if err != nil {
			return nil, fmt.Errorf("check overlap on %s: %w", avail.Date.Format(time.DateOnly), err)
		}

		if overlaps {
			continue
		}

		err = s.repo.CreateAvailability(ctx, avail)
		if err != nil {
			return nil, fmt.Errorf("create availability on %s: %w", avail.Date.Format(time.DateOnly), err)
		}

		created = append(created, avail)
	}

	slog.InfoContext(ctx, "availability published",
		"service_id", params.ServiceID, "requested_days", params.Days, "created_days", len(created))

	return created, nil
}

// FreeSlots returns the availability's remaining bookable slots with the
// service's duration as the step.
func (s *Service) FreeSlots(ctx context.Context, availabilityID uuid.UUID) ([]entity.Slot, error) {
	avail, err := s.repo.Availability(ctx, availabilityID)
	if err != nil {
		return nil, fmt.Errorf("get availability %s: %w", availabilityID, err)
	}

	svc, err := s.repo.Service(ctx, avail.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", avail.ServiceID, err)
	}

	reserved, err := s.repo.ReservedSlots(ctx, avail)
	if err != nil {
		return nil, fmt.Errorf("get reserved slots: %w", err)
	}

	return entity.FreeSlots(avail.Window(), svc.Duration, reserved), nil
}
