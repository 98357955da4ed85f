package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/savinash9/happy-hotels/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// memRepo is an in-memory BookingRepository mirroring the Mongo repo's
// visibility rules for soft-deleted records.
type memRepo struct {
	bookings map[string]models.Booking
	seq      int
	failWith error
}

func newMemRepo() *memRepo {
	return &memRepo{bookings: map[string]models.Booking{}}
}

func (r *memRepo) Create(_ context.Context, booking models.Booking) (*models.Booking, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	r.seq++
	booking.ID = fmt.Sprintf("bk-%d", r.seq)
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = booking.CreatedAt
	booking.DeletedAt = nil
	r.bookings[booking.ID] = booking
	return &booking, nil
}

func (r *memRepo) GetByID(_ context.Context, id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.DeletedAt != nil {
		return nil, mongo.ErrNoDocuments
	}
	return &booking, nil
}

func (r *memRepo) Update(_ context.Context, id string, booking models.Booking) (*models.Booking, error) {
	existing, ok := r.bookings[id]
	if !ok || existing.DeletedAt != nil {
		return nil, mongo.ErrNoDocuments
	}
	booking.ID = id
	booking.UpdatedAt = time.Now().UTC()
	r.bookings[id] = booking
	return &booking, nil
}

func (r *memRepo) List(_ context.Context, filter models.BookingFilter, page, pageSize int) ([]models.Booking, int64, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.DeletedAt != nil {
			continue
		}
		if filter.Hotel != "" && b.Hotel != filter.Hotel {
			continue
		}
		if filter.Month != "" && b.ArrivalDateMonth != filter.Month {
			continue
		}
		out = append(out, b)
	}
	return out, int64(len(out)), nil
}

func (r *memRepo) SoftDelete(_ context.Context, id string) (*models.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok || booking.DeletedAt != nil {
		return nil, mongo.ErrNoDocuments
	}
	now := time.Now().UTC()
	booking.DeletedAt = &now
	r.bookings[id] = booking
	return &booking, nil
}

func newService() (*DefaultBookingService, *memRepo) {
	repo := newMemRepo()
	return &DefaultBookingService{Repo: repo}, repo
}

func TestCreateBookingPersistsValidPayload(t *testing.T) {
	svc, _ := newService()

	created, err := svc.CreateBooking(context.Background(), validPayload())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "City Hotel", created.Hotel)
	assert.Equal(t, "September", created.ArrivalDateMonth)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.DeletedAt)
}

func TestCreateBookingRejectsInvalidPayload(t *testing.T) {
	svc, repo := newService()

	payload := validPayload()
	payload["hotel"] = "Motel"

	_, err := svc.CreateBooking(context.Background(), payload)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Empty(t, repo.bookings, "invalid payloads must not reach the repository")
}

func TestGetBookingNotFound(t *testing.T) {
	svc, _ := newService()

	_, err := svc.GetBooking(context.Background(), "nope")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "nope", notFound.ID)
}

func TestUpdateBookingMergesAndRevalidates(t *testing.T) {
	svc, _ := newService()
	created, err := svc.CreateBooking(context.Background(), validPayload())
	require.NoError(t, err)

	updated, err := svc.UpdateBooking(context.Background(), created.ID, map[string]any{"adults": float64(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Adults)
	assert.Equal(t, "City Hotel", updated.Hotel, "untouched fields survive the patch")
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateBookingRejectsInvalidPatch(t *testing.T) {
	svc, _ := newService()
	created, err := svc.CreateBooking(context.Background(), validPayload())
	require.NoError(t, err)

	_, err = svc.UpdateBooking(context.Background(), created.ID, map[string]any{"reservation_status": "Pending"})
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Contains(t, validation.Details, "reservation_status")

	// The stored record is untouched.
	current, err := svc.GetBooking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Check-Out", current.ReservationStatus)
}

func TestUpdateBookingNotFound(t *testing.T) {
	svc, _ := newService()
	_, err := svc.UpdateBooking(context.Background(), "nope", map[string]any{"adults": float64(1)})
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDeleteBookingSoftDeletes(t *testing.T) {
	svc, _ := newService()
	created, err := svc.CreateBooking(context.Background(), validPayload())
	require.NoError(t, err)

	deleted, err := svc.DeleteBooking(context.Background(), created.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted.DeletedAt)

	_, err = svc.GetBooking(context.Background(), created.ID)
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound, "soft-deleted bookings are invisible")

	_, err = svc.DeleteBooking(context.Background(), created.ID)
	require.ErrorAs(t, err, &notFound, "deleting twice reports not found")
}

func TestListBookingsNormalizesPagingAndMonth(t *testing.T) {
	svc, _ := newService()
	_, err := svc.CreateBooking(context.Background(), validPayload())
	require.NoError(t, err)

	bookings, pagination, err := svc.ListBookings(context.Background(), models.BookingFilter{Month: "september"}, 0, 0)
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 20, pagination.PageSize)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestListBookingsInvalidMonth(t *testing.T) {
	svc, _ := newService()
	_, _, err := svc.ListBookings(context.Background(), models.BookingFilter{Month: "Sept"}, 1, 20)
	var invalidMonth *InvalidMonthError
	require.ErrorAs(t, err, &invalidMonth)
	assert.Equal(t, "Sept", invalidMonth.Value)
}
