package models

// Interval is a half-open time range within a single day, expressed in
// minutes from midnight (e.g., 540 for 9:00 AM).
type Interval struct {
	Start int `bson:"start" json:"start"`
	End   int `bson:"end" json:"end"`
}

// Valid reports whether the interval can represent a real booking window.
func (iv Interval) Valid() bool {
	return iv.Start >= 0 && iv.End <= 1440 && iv.Start < iv.End
}

// Overlaps tests two half-open intervals: [a,b) overlaps [c,d) iff a < d && b > c.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// ClosureRules captures when a service is closed regardless of bookings:
// always-closed weekdays (0=Sunday..6=Saturday) plus explicit one-off
// closure dates ("2025-12-25").
type ClosureRules struct {
	ClosedWeekdays  []int    `bson:"closedWeekdays,omitempty" json:"closedWeekdays,omitempty"`
	SpecialClosures []string `bson:"specialClosures,omitempty" json:"specialClosures,omitempty"`
}

// WeekdayClosed reports whether the given weekday index is always closed.
func (cr ClosureRules) WeekdayClosed(weekday int) bool {
	for _, wd := range cr.ClosedWeekdays {
		if wd == weekday {
			return true
		}
	}
	return false
}

// DateClosed reports whether the given ISO date is a one-off closure.
func (cr ClosureRules) DateClosed(date string) bool {
	for _, d := range cr.SpecialClosures {
		if d == date {
			return true
		}
	}
	return false
}

// AvailabilityProfile aggregates everything the scheduling engine needs to
// answer availability questions for one service. It is assembled by the
// profile repository and treated as read-only by the engine.
type AvailabilityProfile struct {
	ServiceID string `json:"serviceId"`
	// DurationMinutes is the service's appointment length, carried along so
	// callers don't need a second catalog lookup.
	DurationMinutes int `json:"durationMinutes"`
	// Hours is the single daily open/close window. No split shifts.
	Hours    Interval     `json:"businessHours"`
	Closures ClosureRules `json:"closures"`
	// Booked maps an ISO date to the intervals already reserved on that date.
	// The lists are not assumed sorted or mutually non-overlapping.
	Booked map[string][]Interval `json:"bookedSlots,omitempty"`
}

// DateStatus classifies one calendar date for one service and duration.
type DateStatus string

const (
	DateAvailable   DateStatus = "available"
	DateFullyBooked DateStatus = "fully_booked"
	DateClosed      DateStatus = "closed"
)

// CandidateSlot is one bookable window, derived per query and never stored.
// Start and End are minutes from midnight; End-Start always equals Duration.
type CandidateSlot struct {
	Start    int `json:"start"`
	End      int `json:"end"`
	Duration int `json:"durationMinutes"`
}
