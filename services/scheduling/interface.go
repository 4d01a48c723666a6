package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	profileRepo "glowbook/database/repository/profile"
	"glowbook/models"
)

// SchedulingService answers the two questions the mobile client asks: how
// does the forward calendar look for a service, and which slots are open on
// one selected date.
type SchedulingService interface {
	GetCalendar(ctx context.Context, serviceID string) (map[string]models.DateStatus, error)
	GetDaySlots(ctx context.Context, serviceID, date string) ([]models.CandidateSlot, error)
	RefreshCalendar(ctx context.Context, serviceID string) error
}

// DefaultSchedulingService implements SchedulingService over the profile
// repository, with an optional Redis overlay cache.
type DefaultSchedulingService struct {
	Profiles profileRepo.ProfileRepository
	// Cache may be nil; the service then recomputes overlays on every call.
	Cache      *redis.Client
	WindowDays int
	CacheTTL   time.Duration
	// Now is injectable for tests. Defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultSchedulingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultSchedulingService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 60
}
