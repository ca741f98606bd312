package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/booking"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

func newBookingFixture(t *testing.T) (*BookingHandler, *store.MemStore) {
	t.Helper()

	s := store.NewMemStore()
	if _, err := s.CreateUser(models.User{Username: "alice"}); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	if _, err := s.CreateDestination(models.Destination{Name: "Orbital Space Station", Price: 25000}); err != nil {
		t.Fatalf("failed to create destination: %v", err)
	}
	if _, err := s.CreatePackage(models.Package{Name: "Luxury Cabin", Price: 75000, Type: models.PackageLuxury}); err != nil {
		t.Fatalf("failed to create package: %v", err)
	}
	if _, err := s.CreateAccommodation(models.Accommodation{DestinationID: 1, Name: "Orbital Luxury Pod", PricePerNight: 12500}); err != nil {
		t.Fatalf("failed to create accommodation: %v", err)
	}

	service := booking.NewService(s, nil)
	return NewBookingHandler(service, s), s
}

func createRequest() *CreateBookingRequest {
	accommodationID := uint(1)
	req := &CreateBookingRequest{}
	req.Body.UserID = 1
	req.Body.DestinationID = 1
	req.Body.PackageID = 1
	req.Body.AccommodationID = &accommodationID
	req.Body.DepartureDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	req.Body.ReturnDate = time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)
	req.Body.Travelers = 2
	return req
}

func TestHandleCreateIgnoresClientTotal(t *testing.T) {
	handler, _ := newBookingFixture(t)

	req := createRequest()
	req.Body.TotalPrice = 1 // deliberately wrong

	resp, err := handler.HandleCreate(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}
	if resp.Body.TotalPrice != 225000 {
		t.Errorf("expected recomputed total 225000, got %d", resp.Body.TotalPrice)
	}
	if resp.Body.Status != models.BookingPending {
		t.Errorf("expected status pending, got %s", resp.Body.Status)
	}
}

func TestHandleCreateMissingPackage(t *testing.T) {
	handler, s := newBookingFixture(t)

	req := createRequest()
	req.Body.PackageID = 999

	if _, err := handler.HandleCreate(context.Background(), req); err == nil {
		t.Fatal("expected error for missing package")
	}

	// No record was created.
	if _, err := s.GetBooking(1); err == nil {
		t.Error("expected no booking persisted")
	}
}

func TestHandleGetBooking(t *testing.T) {
	handler, _ := newBookingFixture(t)

	created, err := handler.HandleCreate(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}

	resp, err := handler.HandleGet(context.Background(), &GetBookingRequest{ID: created.Body.ID})
	if err != nil {
		t.Fatalf("HandleGet returned error: %v", err)
	}
	if resp.Body.Reference != created.Body.Reference {
		t.Errorf("expected reference %s, got %s", created.Body.Reference, resp.Body.Reference)
	}

	if _, err := handler.HandleGet(context.Background(), &GetBookingRequest{ID: 999}); err == nil {
		t.Fatal("expected error for unknown booking")
	}
}

func TestHandleUserBookings(t *testing.T) {
	handler, _ := newBookingFixture(t)

	if _, err := handler.HandleCreate(context.Background(), createRequest()); err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}

	resp, err := handler.HandleUserBookings(context.Background(), &UserBookingsRequest{UserID: 1})
	if err != nil {
		t.Fatalf("HandleUserBookings returned error: %v", err)
	}
	if len(resp.Body) != 1 {
		t.Errorf("expected 1 booking, got %d", len(resp.Body))
	}

	if _, err := handler.HandleUserBookings(context.Background(), &UserBookingsRequest{UserID: 999}); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestHandleSetStatus(t *testing.T) {
	handler, s := newBookingFixture(t)

	created, err := handler.HandleCreate(context.Background(), createRequest())
	if err != nil {
		t.Fatalf("HandleCreate returned error: %v", err)
	}

	req := &SetBookingStatusRequest{ID: created.Body.ID}
	req.Body.Status = "confirmed"

	resp, err := handler.HandleSetStatus(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleSetStatus returned error: %v", err)
	}
	if resp.Body.Status != models.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", resp.Body.Status)
	}

	// Bogus status leaves the record untouched.
	req.Body.Status = "bogus"
	if _, err := handler.HandleSetStatus(context.Background(), req); err == nil {
		t.Fatal("expected error for bogus status")
	}
	current, _ := s.GetBooking(created.Body.ID)
	if current.Status != models.BookingConfirmed {
		t.Errorf("expected status unchanged, got %s", current.Status)
	}
}

func TestHandleQuote(t *testing.T) {
	handler, s := newBookingFixture(t)

	accommodationID := uint(1)
	req := &QuoteRequest{}
	req.Body.PackageID = 1
	req.Body.AccommodationID = &accommodationID
	req.Body.DepartureDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	req.Body.ReturnDate = time.Date(2025, time.January, 4, 0, 0, 0, 0, time.UTC)
	req.Body.Travelers = 2

	resp, err := handler.HandleQuote(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleQuote returned error: %v", err)
	}
	if resp.Body.TotalPrice != 225000 {
		t.Errorf("expected 225000, got %d", resp.Body.TotalPrice)
	}

	if _, err := s.GetBooking(1); err == nil {
		t.Error("expected quote not to persist a booking")
	}
}
