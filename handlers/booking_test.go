package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"glowbook/models"
	"glowbook/services/booking"
)

type fakeBookingService struct {
	err error
}

func (f *fakeBookingService) ConfirmBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.Booking{
		ID:           "bk-1",
		ServiceID:    req.ServiceID,
		Date:         req.Date,
		Start:        585,
		End:          630,
		CustomerName: req.CustomerName,
		Status:       models.BookingStatusConfirmed,
		CreatedAt:    time.Now(),
	}, nil
}

func (f *fakeBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return nil, booking.NewBookingError("notFound", "no such booking")
}

func (f *fakeBookingService) CancelBooking(ctx context.Context, id string) error {
	return f.err
}

func newBookingRouter(f *fakeBookingService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewBookingHandler(f)
	r.POST("/api/bookings", h.ConfirmBookingHandler)
	return r
}

const confirmPayload = `{
	"serviceId": "svc-1",
	"date": "2026-09-08",
	"startTime": "09:45",
	"customerName": "Ada"
}`

func TestConfirmBookingHandler(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(confirmPayload))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var resp BookingDTO
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.StartTime != "09:45" || resp.EndTime != "10:30" {
		t.Fatalf("expected 09:45-10:30, got %s-%s", resp.StartTime, resp.EndTime)
	}
}

func TestConfirmBookingHandler_Statuses(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{booking.ErrSlotTaken, http.StatusConflict},
		{booking.ErrSlotUnavailable, http.StatusUnprocessableEntity},
		{booking.ErrUnknownService, http.StatusNotFound},
	}
	for _, tc := range cases {
		r := newBookingRouter(&fakeBookingService{err: tc.err})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(confirmPayload))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, w.Code)
		}
	}
}

func TestConfirmBookingHandler_MissingFields(t *testing.T) {
	r := newBookingRouter(&fakeBookingService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(`{"serviceId":"svc-1"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing required fields, got %d", w.Code)
	}
}
