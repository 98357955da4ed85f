package bookingRepo

import (
	"context"
	"time"

	"github.com/savinash9/happy-hotels/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted is the filter fragment excluding soft-deleted records.
func notDeleted(extra bson.M) bson.M {
	filter := bson.M{"deleted_at": bson.M{"$exists": false}}
	for k, v := range extra {
		filter[k] = v
	}
	return filter
}

// Create inserts a new booking record and returns the stored representation.
func (r *mongoBookingRepo) Create(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	booking.CreatedAt = time.Now().UTC()
	booking.UpdatedAt = booking.CreatedAt
	booking.DeletedAt = nil

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// GetByID returns a booking record by its ID.
func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := r.coll.FindOne(ctx, notDeleted(bson.M{"id": id})).Decode(&booking)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// Update replaces the mutable fields of a booking record and returns the
// updated representation.
func (r *mongoBookingRepo) Update(ctx context.Context, id string, booking models.Booking) (*models.Booking, error) {
	booking.ID = id
	booking.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": booking}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, notDeleted(bson.M{"id": id}), update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// List returns a page of bookings matching the filter plus the total count.
func (r *mongoBookingRepo) List(ctx context.Context, filter models.BookingFilter, page, pageSize int) ([]models.Booking, int64, error) {
	query := bson.M{}
	if filter.Hotel != "" {
		query["hotel"] = filter.Hotel
	}
	if filter.Year != 0 {
		query["arrival_date_year"] = filter.Year
	}
	if filter.Month != "" {
		query["arrival_date_month"] = filter.Month
	}
	if filter.Country != "" {
		query["country"] = filter.Country
	}
	if filter.Status != "" {
		query["reservation_status"] = filter.Status
	}
	q := notDeleted(query)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))

	cursor, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// SoftDelete marks a booking record as deleted and returns it with the
// deletion timestamp set. Records are never physically removed.
func (r *mongoBookingRepo) SoftDelete(ctx context.Context, id string) (*models.Booking, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var deleted models.Booking
	err := r.coll.FindOneAndUpdate(ctx, notDeleted(bson.M{"id": id}), update, opts).Decode(&deleted)
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}
