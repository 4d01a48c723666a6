// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"glowbook/database"
	"glowbook/models"
)

// ErrSlotTaken is returned when another booking already holds the requested
// slot. Arbitration happens at write time through a unique index, not in the
// availability engine.
var ErrSlotTaken = errors.New("slot already booked")

// BookingRepository persists confirmed bookings.
type BookingRepository interface {
	// Create inserts the booking. Returns ErrSlotTaken when a booking for the
	// same (serviceId, date, start) already exists.
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	Cancel(ctx context.Context, bookingID string) error
	// ListByServiceAndDates returns confirmed bookings for the service within
	// [fromDate, toDate], grouped by ISO date.
	ListByServiceAndDates(ctx context.Context, serviceID, fromDate, toDate string) (map[string][]models.Interval, error)
	// EnsureIndexes creates the unique slot index. Call once at startup.
	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new MongoDB BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
