package booking

import "fmt"

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ErrSlotTaken: another customer confirmed the same slot first.
var ErrSlotTaken = &BookingError{
	Code:    "slotTaken",
	Message: "the selected slot has just been booked by someone else",
}

// ErrSlotUnavailable: the requested slot is not one the engine would offer
// (closed date, overlapping booking, or misaligned start time).
var ErrSlotUnavailable = &BookingError{
	Code:    "slotUnavailable",
	Message: "the selected slot is not available for booking",
}

// ErrUnknownService: no catalog entry for the requested service.
var ErrUnknownService = &BookingError{
	Code:    "unknownService",
	Message: "no such service",
}

func NewBookingError(code, msg string) error {
	return &BookingError{Code: code, Message: msg}
}
