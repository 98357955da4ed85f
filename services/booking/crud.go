package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/savinash9/happy-hotels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBooking validates the payload against the record shape contract
// and persists a new booking.
func (svc *DefaultBookingService) CreateBooking(ctx context.Context, payload map[string]any) (*models.Booking, error) {
	if err := ValidateBookingPayload(payload); err != nil {
		return nil, err
	}
	booking, err := models.BookingFromMap(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode booking payload: %w", err)
	}
	booking.ID = ""
	created, err := svc.Repo.Create(ctx, *booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

// GetBooking returns a booking by ID.
func (svc *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	booking, err := svc.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	return booking, nil
}

// UpdateBooking applies a partial patch onto the stored record,
// re-validates the merged result as if it were being created, and
// persists it. Updated fields follow the same contract as create.
func (svc *DefaultBookingService) UpdateBooking(ctx context.Context, id string, patch map[string]any) (*models.Booking, error) {
	existing, err := svc.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	merged := existing.ToMap()
	for k, v := range patch {
		if metaFields[k] {
			continue
		}
		merged[k] = v
	}
	if err := ValidateBookingPayload(merged); err != nil {
		return nil, err
	}

	booking, err := models.BookingFromMap(merged)
	if err != nil {
		return nil, fmt.Errorf("failed to decode booking payload: %w", err)
	}
	booking.CreatedAt = existing.CreatedAt

	updated, err := svc.Repo.Update(ctx, id, *booking)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return updated, nil
}

// ListBookings returns a filtered page of bookings.
func (svc *DefaultBookingService) ListBookings(ctx context.Context, filter models.BookingFilter, page, pageSize int) ([]models.Booking, *models.Pagination, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	if filter.Month != "" {
		canonical, ok := models.CanonicalMonth(filter.Month)
		if !ok {
			return nil, nil, &InvalidMonthError{Value: filter.Month}
		}
		filter.Month = canonical
	}

	bookings, total, err := svc.Repo.List(ctx, filter, page, pageSize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, &models.Pagination{Page: page, PageSize: pageSize, Total: total}, nil
}

// DeleteBooking soft-deletes a booking and returns it with the deletion
// timestamp set.
func (svc *DefaultBookingService) DeleteBooking(ctx context.Context, id string) (*models.Booking, error) {
	deleted, err := svc.Repo.SoftDelete(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}
	return deleted, nil
}
