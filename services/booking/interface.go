package booking

import (
	"context"
	"time"

	bookingRepo "glowbook/database/repository/booking"
	catalogRepo "glowbook/database/repository/catalog"
	profileRepo "glowbook/database/repository/profile"
	"glowbook/models"
	"glowbook/services/scheduling"
)

// BookingService turns a chosen candidate slot into a persisted reservation.
type BookingService interface {
	ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Catalog   catalogRepo.CatalogRepository
	Profiles  profileRepo.ProfileRepository
	Bookings  bookingRepo.BookingRepository
	Scheduler scheduling.SchedulingService
	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
