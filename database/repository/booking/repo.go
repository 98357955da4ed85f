package bookingRepo

import (
	"context"

	"github.com/savinash9/happy-hotels/config"
	"github.com/savinash9/happy-hotels/database"
	"github.com/savinash9/happy-hotels/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository defines persistence operations for booking records.
// Soft-deleted records are invisible to every method except SoftDelete
// itself, which returns the record with its deletion timestamp set.
type BookingRepository interface {
	Create(ctx context.Context, booking models.Booking) (*models.Booking, error)
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, booking models.Booking) (*models.Booking, error)
	List(ctx context.Context, filter models.BookingFilter, page, pageSize int) ([]models.Booking, int64, error)
	SoftDelete(ctx context.Context, id string) (*models.Booking, error)
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
