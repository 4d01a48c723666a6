package models

import "time"

// Booking statuses.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
)

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	ServiceID     string    `bson:"serviceId" json:"serviceId"`
	ShopID        string    `bson:"shopId,omitempty" json:"shopId,omitempty"`
	Date          string    `bson:"date" json:"date"`   // "YYYY-MM-DD"
	Start         int       `bson:"start" json:"start"` // minutes from midnight
	End           int       `bson:"end" json:"end"`     // minutes from midnight
	CustomerName  string    `bson:"customerName" json:"customerName"`
	CustomerEmail string    `bson:"customerEmail,omitempty" json:"customerEmail,omitempty"`
	CustomerPhone string    `bson:"customerPhone,omitempty" json:"customerPhone,omitempty"`
	Status        string    `bson:"status" json:"status"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

// Interval returns the booked window as an Interval value.
func (b Booking) Interval() Interval {
	return Interval{Start: b.Start, End: b.End}
}

// BookingRequest is the submission payload from the mobile client. Times
// cross this boundary as "HH:MM" strings and dates as "YYYY-MM-DD" strings.
type BookingRequest struct {
	ServiceID     string `json:"serviceId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"startTime" binding:"required"`
	CustomerName  string `json:"customerName" binding:"required"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	CustomerPhone string `json:"customerPhone,omitempty"`
}
