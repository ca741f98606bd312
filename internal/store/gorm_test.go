package store

import (
	"errors"
	"testing"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newGormStore(t *testing.T) *GormStore {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Destination{},
		&models.Package{},
		&models.Accommodation{},
		&models.Testimonial{},
		&models.Booking{},
	)
	if err != nil {
		t.Fatalf("failed to auto migrate: %v", err)
	}

	return NewGormStore(db)
}

func TestGormStoreUserConflict(t *testing.T) {
	s := newGormStore(t)

	if _, err := s.CreateUser(models.User{Username: "alice"}); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}

	if _, err := s.CreateUser(models.User{Username: "alice"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	user, err := s.GetUserByUsername("alice")
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("expected user 1, got %d", user.ID)
	}
}

func TestGormStoreDestinationRoundtrip(t *testing.T) {
	s := newGormStore(t)

	created, err := s.CreateDestination(models.Destination{Name: "Lunar Colony Alpha", Price: 58000, Featured: true})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	got, err := s.GetDestination(created.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if got.Name != "Lunar Colony Alpha" || got.Price != 58000 {
		t.Errorf("unexpected destination: %+v", got)
	}

	featured, err := s.FeaturedDestinations()
	if err != nil {
		t.Fatalf("featured lookup returned error: %v", err)
	}
	if len(featured) != 1 {
		t.Errorf("expected 1 featured destination, got %d", len(featured))
	}

	if _, err := s.GetDestination(999); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStorePackageFeaturesSurviveRoundtrip(t *testing.T) {
	s := newGormStore(t)

	created, err := s.CreatePackage(models.Package{
		Name:     "Luxury Cabin",
		Price:    75000,
		Features: []string{"Private luxury pod with window", "Gourmet space cuisine"},
		Type:     models.PackageLuxury,
	})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}

	got, err := s.GetPackage(created.ID)
	if err != nil {
		t.Fatalf("get returned error: %v", err)
	}
	if len(got.Features) != 2 || got.Features[1] != "Gourmet space cuisine" {
		t.Errorf("features did not survive roundtrip: %+v", got.Features)
	}
}

func TestGormStoreBookingStatusUpdate(t *testing.T) {
	s := newGormStore(t)

	created, err := s.CreateBooking(models.Booking{UserID: 1, Travelers: 2, Status: models.BookingPending})
	if err != nil {
		t.Fatalf("create returned error: %v", err)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected createdAt to be set")
	}

	updated, err := s.UpdateBookingStatus(created.ID, models.BookingConfirmed)
	if err != nil {
		t.Fatalf("update returned error: %v", err)
	}
	if updated.Status != models.BookingConfirmed {
		t.Errorf("expected confirmed, got %s", updated.Status)
	}

	if _, err := s.UpdateBookingStatus(999, models.BookingConfirmed); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGormStoreAccommodationsByDestination(t *testing.T) {
	s := newGormStore(t)

	s.CreateAccommodation(models.Accommodation{DestinationID: 1, Name: "Suite", Amenities: []string{"Earth View"}})
	s.CreateAccommodation(models.Accommodation{DestinationID: 2, Name: "Pod"})

	matches, err := s.AccommodationsByDestination(1)
	if err != nil {
		t.Fatalf("lookup returned error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "Suite" {
		t.Errorf("unexpected matches: %+v", matches)
	}
}
