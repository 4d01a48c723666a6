package scheduling

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	profileRepo "glowbook/database/repository/profile"
	"glowbook/models"
	"glowbook/utils"
)

func overlayCacheKey(serviceID string) string {
	return fmt.Sprintf("overlay:%s", serviceID)
}

// GetCalendar returns the dense date -> status map for the configured
// forward window. A missing profile degrades to an all-closed calendar so
// the client renders "no availability" instead of an error screen.
func (s *DefaultSchedulingService) GetCalendar(ctx context.Context, serviceID string) (map[string]models.DateStatus, error) {
	logger := utils.GetLogger()

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, overlayCacheKey(serviceID)).Result(); err == nil {
			var overlay map[string]models.DateStatus
			if err := json.Unmarshal([]byte(cached), &overlay); err == nil {
				return overlay, nil
			}
			logger.Warn("discarding corrupt cached overlay", zap.String("serviceID", serviceID))
		}
	}

	overlay, err := s.computeOverlay(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if s.Cache != nil {
		if data, err := json.Marshal(overlay); err == nil {
			ttl := s.CacheTTL
			if ttl <= 0 {
				ttl = 10 * time.Minute
			}
			if err := s.Cache.Set(ctx, overlayCacheKey(serviceID), data, ttl).Err(); err != nil {
				logger.Warn("failed to cache overlay", zap.String("serviceID", serviceID), zap.Error(err))
			}
		}
	}
	return overlay, nil
}

// GetDaySlots returns the ordered bookable slots for one date. Slots are
// always computed from a fresh profile snapshot, never from the overlay
// cache, so a just-confirmed booking disappears from the list immediately.
func (s *DefaultSchedulingService) GetDaySlots(ctx context.Context, serviceID, date string) ([]models.CandidateSlot, error) {
	day, err := utils.ParseISODate(date)
	if err != nil {
		return nil, err
	}

	profile, duration, err := s.loadProfile(ctx, serviceID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	return GenerateSlots(day, profile, duration, s.now()), nil
}

// RefreshCalendar recomputes the overlay and replaces the cached copy.
// Used by the nightly warmer and after a booking is confirmed.
func (s *DefaultSchedulingService) RefreshCalendar(ctx context.Context, serviceID string) error {
	overlay, err := s.computeOverlay(ctx, serviceID)
	if err != nil {
		return err
	}
	if s.Cache == nil {
		return nil
	}
	data, err := json.Marshal(overlay)
	if err != nil {
		return fmt.Errorf("failed to marshal overlay: %w", err)
	}
	ttl := s.CacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return s.Cache.Set(ctx, overlayCacheKey(serviceID), data, ttl).Err()
}

func (s *DefaultSchedulingService) computeOverlay(ctx context.Context, serviceID string) (map[string]models.DateStatus, error) {
	profile, duration, err := s.loadProfile(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	today := s.now()
	if profile == nil {
		// No profile: every date in the window reads as closed.
		return BuildOverlay(nil, 0, s.windowDays(), today), nil
	}
	return BuildOverlay(profile, duration, s.windowDays(), today), nil
}

// loadProfile fetches the profile and the service duration. A missing
// profile is not an error at this layer: it returns (nil, 0, nil) and the
// caller degrades to closed/empty output.
func (s *DefaultSchedulingService) loadProfile(ctx context.Context, serviceID string) (*models.AvailabilityProfile, int, error) {
	profile, err := s.Profiles.GetProfile(ctx, serviceID, s.windowDays())
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			utils.GetLogger().Warn("no availability profile for service",
				zap.String("serviceID", serviceID))
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("failed to load availability profile: %w", err)
	}
	return profile, profile.DurationMinutes, nil
}
