// File: database/repository/profile/profile.go
package profileRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	"glowbook/models"
	"glowbook/utils"
)

// ErrProfileNotFound is returned when no availability profile exists for the
// requested service.
var ErrProfileNotFound = errors.New("availability profile not found")

// ProfileRepository assembles the read-only availability profile the
// scheduling engine consumes. The engine never sees the storage shape.
type ProfileRepository interface {
	GetProfile(ctx context.Context, serviceID string, windowDays int) (*models.AvailabilityProfile, error)
}

type mongoProfileRepo struct {
	catalog  catalogRepo.CatalogRepository
	bookings bookingRepo.BookingRepository
	now      func() time.Time
}

// NewMongoProfileRepo constructs a ProfileRepository over the catalog and
// booking repositories.
func NewMongoProfileRepo(catalog catalogRepo.CatalogRepository, bookings bookingRepo.BookingRepository) ProfileRepository {
	return &mongoProfileRepo{catalog: catalog, bookings: bookings, now: time.Now}
}

func (r *mongoProfileRepo) GetProfile(ctx context.Context, serviceID string, windowDays int) (*models.AvailabilityProfile, error) {
	svc, err := r.catalog.GetServiceByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to load service %s: %w", serviceID, err)
	}

	open, err := utils.ParseClock(svc.OpenTime)
	if err != nil {
		return nil, fmt.Errorf("service %s has malformed open time: %w", serviceID, err)
	}
	closeAt, err := utils.ParseClock(svc.CloseTime)
	if err != nil {
		return nil, fmt.Errorf("service %s has malformed close time: %w", serviceID, err)
	}

	if windowDays <= 0 {
		windowDays = 1
	}
	today := utils.Midnight(r.now())
	fromDate := today.Format(utils.ISODate)
	toDate := today.AddDate(0, 0, windowDays-1).Format(utils.ISODate)

	booked, err := r.bookings.ListByServiceAndDates(ctx, serviceID, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("failed to load booked slots for service %s: %w", serviceID, err)
	}

	return &models.AvailabilityProfile{
		ServiceID:       serviceID,
		DurationMinutes: svc.DurationMinutes,
		Hours:           models.Interval{Start: open, End: closeAt},
		Closures: models.ClosureRules{
			ClosedWeekdays:  svc.ClosedWeekdays,
			SpecialClosures: svc.SpecialClosures,
		},
		Booked: booked,
	}, nil
}
