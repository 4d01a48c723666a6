package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	bookingRepo "glowbook/database/repository/booking"
	"glowbook/models"
	"glowbook/utils"
)

var (
	testToday    = time.Date(2026, 9, 7, 10, 0, 0, 0, time.Local)
	testTomorrow = utils.Midnight(testToday).AddDate(0, 0, 1)
)

type fakeCatalog struct {
	svc *models.Service
}

func (f *fakeCatalog) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	if f.svc == nil || f.svc.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	return f.svc, nil
}
func (f *fakeCatalog) ListServices(ctx context.Context) ([]models.Service, error) {
	if f.svc == nil {
		return nil, nil
	}
	return []models.Service{*f.svc}, nil
}
func (f *fakeCatalog) ListServicesByShop(ctx context.Context, shopID string) ([]models.Service, error) {
	return f.ListServices(ctx)
}
func (f *fakeCatalog) GetShopByID(ctx context.Context, id string) (*models.Shop, error) {
	return nil, mongo.ErrNoDocuments
}
func (f *fakeCatalog) ListShops(ctx context.Context) ([]models.Shop, error) { return nil, nil }

type fakeProfiles struct {
	profile *models.AvailabilityProfile
}

func (f *fakeProfiles) GetProfile(ctx context.Context, serviceID string, windowDays int) (*models.AvailabilityProfile, error) {
	return f.profile, nil
}

type fakeBookings struct {
	created   []*models.Booking
	createErr error
}

func (f *fakeBookings) Create(ctx context.Context, b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	b.ID = "bk-1"
	f.created = append(f.created, b)
	return nil
}
func (f *fakeBookings) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	for _, b := range f.created {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}
func (f *fakeBookings) Cancel(ctx context.Context, id string) error {
	for _, b := range f.created {
		if b.ID == id {
			b.Status = models.BookingStatusCancelled
			return nil
		}
	}
	return mongo.ErrNoDocuments
}
func (f *fakeBookings) ListByServiceAndDates(ctx context.Context, serviceID, from, to string) (map[string][]models.Interval, error) {
	return nil, nil
}
func (f *fakeBookings) EnsureIndexes(ctx context.Context) error { return nil }

func newTestBookingService(bookings *fakeBookings) *DefaultBookingService {
	svc := &models.Service{
		ID:              "svc-1",
		ShopID:          "shop-1",
		Name:            "Haircut",
		DurationMinutes: 45,
		OpenTime:        "09:00",
		CloseTime:       "18:00",
	}
	profile := &models.AvailabilityProfile{
		ServiceID:       "svc-1",
		DurationMinutes: 45,
		Hours:           models.Interval{Start: 540, End: 1080},
		Booked:          map[string][]models.Interval{},
	}
	return &DefaultBookingService{
		Catalog:  &fakeCatalog{svc: svc},
		Profiles: &fakeProfiles{profile: profile},
		Bookings: bookings,
		Now:      func() time.Time { return testToday },
	}
}

func TestConfirmBooking(t *testing.T) {
	bookings := &fakeBookings{}
	svc := newTestBookingService(bookings)

	req := models.BookingRequest{
		ServiceID:    "svc-1",
		Date:         testTomorrow.Format(utils.ISODate),
		StartTime:    "09:45",
		CustomerName: "Ada",
	}
	b, err := svc.ConfirmBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("ConfirmBooking returned error: %v", err)
	}
	if b.Start != 585 || b.End != 630 {
		t.Fatalf("expected 09:45-10:30 booking, got %d-%d", b.Start, b.End)
	}
	if b.Status != models.BookingStatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", b.Status)
	}
	if len(bookings.created) != 1 {
		t.Fatalf("expected one persisted booking, got %d", len(bookings.created))
	}
}

func TestConfirmBooking_MisalignedStartRejected(t *testing.T) {
	svc := newTestBookingService(&fakeBookings{})

	req := models.BookingRequest{
		ServiceID:    "svc-1",
		Date:         testTomorrow.Format(utils.ISODate),
		StartTime:    "10:00", // not on a 45-minute boundary from 09:00
		CustomerName: "Ada",
	}
	if _, err := svc.ConfirmBooking(context.Background(), req); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}
}

func TestConfirmBooking_PastDateRejected(t *testing.T) {
	svc := newTestBookingService(&fakeBookings{})

	req := models.BookingRequest{
		ServiceID:    "svc-1",
		Date:         utils.Midnight(testToday).AddDate(0, 0, -1).Format(utils.ISODate),
		StartTime:    "09:00",
		CustomerName: "Ada",
	}
	if _, err := svc.ConfirmBooking(context.Background(), req); !errors.Is(err, ErrSlotUnavailable) {
		t.Fatalf("expected ErrSlotUnavailable for past date, got %v", err)
	}
}

func TestConfirmBooking_UnknownService(t *testing.T) {
	svc := newTestBookingService(&fakeBookings{})

	req := models.BookingRequest{
		ServiceID:    "nope",
		Date:         testTomorrow.Format(utils.ISODate),
		StartTime:    "09:00",
		CustomerName: "Ada",
	}
	if _, err := svc.ConfirmBooking(context.Background(), req); !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
}

func TestConfirmBooking_RaceMapsToSlotTaken(t *testing.T) {
	svc := newTestBookingService(&fakeBookings{createErr: bookingRepo.ErrSlotTaken})

	req := models.BookingRequest{
		ServiceID:    "svc-1",
		Date:         testTomorrow.Format(utils.ISODate),
		StartTime:    "09:00",
		CustomerName: "Ada",
	}
	if _, err := svc.ConfirmBooking(context.Background(), req); !errors.Is(err, ErrSlotTaken) {
		t.Fatalf("expected ErrSlotTaken, got %v", err)
	}
}

func TestConfirmBooking_InvalidInputs(t *testing.T) {
	svc := newTestBookingService(&fakeBookings{})

	cases := []models.BookingRequest{
		{ServiceID: "svc-1", Date: "not-a-date", StartTime: "09:00", CustomerName: "Ada"},
		{ServiceID: "svc-1", Date: testTomorrow.Format(utils.ISODate), StartTime: "9am", CustomerName: "Ada"},
	}
	for _, req := range cases {
		var bookingErr *BookingError
		if _, err := svc.ConfirmBooking(context.Background(), req); !errors.As(err, &bookingErr) {
			t.Fatalf("expected BookingError for %+v, got %v", req, err)
		}
	}
}

func TestCancelBooking(t *testing.T) {
	bookings := &fakeBookings{}
	svc := newTestBookingService(bookings)

	req := models.BookingRequest{
		ServiceID:    "svc-1",
		Date:         testTomorrow.Format(utils.ISODate),
		StartTime:    "09:00",
		CustomerName: "Ada",
	}
	b, err := svc.ConfirmBooking(context.Background(), req)
	if err != nil {
		t.Fatalf("ConfirmBooking returned error: %v", err)
	}
	if err := svc.CancelBooking(context.Background(), b.ID); err != nil {
		t.Fatalf("CancelBooking returned error: %v", err)
	}
	got, err := svc.GetBooking(context.Background(), b.ID)
	if err != nil {
		t.Fatalf("GetBooking returned error: %v", err)
	}
	if got.Status != models.BookingStatusCancelled {
		t.Fatalf("expected cancelled status, got %s", got.Status)
	}
}
