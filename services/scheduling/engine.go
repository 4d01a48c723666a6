package scheduling

import (
	"time"

	"glowbook/models"
	"glowbook/utils"
)

// The availability engine. Everything in this file is a pure function of the
// profile snapshot it is handed: no I/O, no shared state, safe to call from
// any goroutine. Write-time conflict arbitration between racing customers is
// the booking repository's job, not the engine's.

// Classify derives the calendar status of one date for one service and
// requested duration.
//
// A date is closed when its weekday is always closed, when it is a one-off
// closure, when it lies before today, or when no slot of the requested
// duration fits inside business hours. An open date with every
// duration-aligned window blocked by an existing booking is fully booked;
// otherwise it is available.
func Classify(date time.Time, profile *models.AvailabilityProfile, durationMinutes int, today time.Time) models.DateStatus {
	if isClosedDate(date, profile, today) {
		return models.DateClosed
	}

	total := totalPossibleSlots(profile.Hours, durationMinutes)
	if total <= 0 {
		return models.DateClosed
	}

	booked := bookableBlocks(profile, date)
	blocked := 0
	for start := profile.Hours.Start; start+durationMinutes <= profile.Hours.End; start += durationMinutes {
		window := models.Interval{Start: start, End: start + durationMinutes}
		if overlapsAny(window, booked) {
			blocked++
		}
	}

	if blocked >= total {
		return models.DateFullyBooked
	}
	return models.DateAvailable
}

// GenerateSlots enumerates the bookable windows on one date, ordered by
// ascending start time. Every emitted slot is exactly durationMinutes long,
// starts on a duration boundary from opening time, ends at or before close,
// and overlaps no existing booking. Closed dates yield nil.
func GenerateSlots(date time.Time, profile *models.AvailabilityProfile, durationMinutes int, today time.Time) []models.CandidateSlot {
	if isClosedDate(date, profile, today) {
		return nil
	}
	if durationMinutes <= 0 {
		return nil
	}

	booked := bookableBlocks(profile, date)

	var slots []models.CandidateSlot
	for start := profile.Hours.Start; start+durationMinutes <= profile.Hours.End; start += durationMinutes {
		window := models.Interval{Start: start, End: start + durationMinutes}
		if overlapsAny(window, booked) {
			continue
		}
		slots = append(slots, models.CandidateSlot{
			Start:    window.Start,
			End:      window.End,
			Duration: durationMinutes,
		})
	}
	return slots
}

// BuildOverlay classifies every date from today through today+windowDays-1
// and returns a dense ISO-date -> status map for calendar rendering.
func BuildOverlay(profile *models.AvailabilityProfile, durationMinutes, windowDays int, today time.Time) map[string]models.DateStatus {
	overlay := make(map[string]models.DateStatus, windowDays)
	day := utils.Midnight(today)
	for i := 0; i < windowDays; i++ {
		d := day.AddDate(0, 0, i)
		overlay[d.Format(utils.ISODate)] = Classify(d, profile, durationMinutes, today)
	}
	return overlay
}

// isClosedDate applies the closure rules that do not depend on bookings:
// missing profile, always-closed weekday, one-off closure, past date.
func isClosedDate(date time.Time, profile *models.AvailabilityProfile, today time.Time) bool {
	if profile == nil {
		return true
	}
	if profile.Closures.WeekdayClosed(int(date.Weekday())) {
		return true
	}
	if profile.Closures.DateClosed(date.Format(utils.ISODate)) {
		return true
	}
	return utils.Midnight(date).Before(utils.Midnight(today))
}

// totalPossibleSlots is how many duration-aligned windows fit in the business
// window. A trailing partial period is never offered.
func totalPossibleSlots(hours models.Interval, durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	return (hours.End - hours.Start) / durationMinutes
}

// bookableBlocks returns the booked intervals for the date, dropping
// malformed entries (start >= end) since they cannot represent a real
// booking. The input list is never assumed sorted or non-overlapping.
func bookableBlocks(profile *models.AvailabilityProfile, date time.Time) []models.Interval {
	raw := profile.Booked[date.Format(utils.ISODate)]
	if len(raw) == 0 {
		return nil
	}
	blocks := make([]models.Interval, 0, len(raw))
	for _, iv := range raw {
		if iv.Start >= iv.End {
			continue
		}
		blocks = append(blocks, iv)
	}
	return blocks
}

func overlapsAny(window models.Interval, booked []models.Interval) bool {
	for _, b := range booked {
		if window.Overlaps(b) {
			return true
		}
	}
	return false
}
