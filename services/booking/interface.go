package booking

import (
	"context"

	bookingRepo "github.com/savinash9/happy-hotels/database/repository/booking"
	"github.com/savinash9/happy-hotels/models"
)

// BookingService owns the durable booking records and their validation
// rules. Every mutation validates the full record shape before touching
// the repository.
type BookingService interface {
	CreateBooking(ctx context.Context, payload map[string]any) (*models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id string, patch map[string]any) (*models.Booking, error)
	ListBookings(ctx context.Context, filter models.BookingFilter, page, pageSize int) ([]models.Booking, *models.Pagination, error)
	DeleteBooking(ctx context.Context, id string) (*models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
