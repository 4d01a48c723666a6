package booking

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	bookingRepo "glowbook/database/repository/booking"
	profileRepo "glowbook/database/repository/profile"
	"glowbook/models"
	"glowbook/services/scheduling"
	"glowbook/utils"
)

// ConfirmBooking validates the requested slot against a fresh availability
// snapshot and persists it. The snapshot check catches closed dates and
// stale clients; the unique index in the booking repository catches the race
// where two customers pass the snapshot check for the same slot.
func (s *DefaultBookingService) ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseISODate(req.Date)
	if err != nil {
		return nil, NewBookingError("invalidDate", err.Error())
	}
	start, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, NewBookingError("invalidTime", err.Error())
	}

	svc, err := s.Catalog.GetServiceByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrUnknownService
		}
		return nil, fmt.Errorf("failed to load service: %w", err)
	}

	// Fetch booked slots far enough forward to cover the requested date.
	windowDays := int(utils.Midnight(day).Sub(utils.Midnight(s.now())).Hours()/24) + 1
	if windowDays < 1 {
		windowDays = 1
	}
	profile, err := s.Profiles.GetProfile(ctx, req.ServiceID, windowDays)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			return nil, ErrSlotUnavailable
		}
		return nil, fmt.Errorf("failed to load availability profile: %w", err)
	}

	offered := false
	for _, slot := range scheduling.GenerateSlots(day, profile, svc.DurationMinutes, s.now()) {
		if slot.Start == start {
			offered = true
			break
		}
	}
	if !offered {
		return nil, ErrSlotUnavailable
	}

	booking := &models.Booking{
		ServiceID:     svc.ID,
		ShopID:        svc.ShopID,
		Date:          req.Date,
		Start:         start,
		End:           start + svc.DurationMinutes,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Status:        models.BookingStatusConfirmed,
		CreatedAt:     s.now(),
	}
	if err := s.Bookings.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	// Best effort: drop the stale cached calendar so the next render sees
	// the new booking.
	if s.Scheduler != nil {
		if err := s.Scheduler.RefreshCalendar(ctx, svc.ID); err != nil {
			logger.Warn("failed to refresh calendar after booking",
				zap.String("serviceID", svc.ID), zap.Error(err))
		}
	}

	logger.Info("booking confirmed",
		zap.String("bookingID", booking.ID),
		zap.String("serviceID", svc.ID),
		zap.String("date", booking.Date),
		zap.Int("start", booking.Start))
	return booking, nil
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, NewBookingError("notFound", "no such booking")
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return b, nil
}

func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string) error {
	if err := s.Bookings.Cancel(ctx, bookingID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return NewBookingError("notFound", "no such confirmed booking")
		}
		return fmt.Errorf("failed to cancel booking: %w", err)
	}
	return nil
}
