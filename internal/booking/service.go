package booking

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/notifier"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

const (
	MinTravelers = 1
	MaxTravelers = 10
)

// Service owns the booking lifecycle: it resolves every reference,
// recomputes the total server-side and drives status transitions.
type Service struct {
	store    store.Store
	notifier notifier.Notifier
}

func NewService(s store.Store, n notifier.Notifier) *Service {
	return &Service{store: s, notifier: n}
}

type CreateBookingInput struct {
	UserID          uint
	DestinationID   uint
	PackageID       uint
	AccommodationID *uint
	DepartureDate   time.Time
	ReturnDate      time.Time
	Travelers       int
}

// CreateBooking validates the request, derives the total price and
// persists the booking with status pending. The checks run in a fixed
// order (user, destination, package, accommodation) so the first broken
// reference is always the one reported; nothing is persisted unless
// every check passes. Any client-submitted total is ignored: the price
// is always recomputed here.
func (s *Service) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	// 1. Validate scalar fields
	if in.Travelers < MinTravelers || in.Travelers > MaxTravelers {
		return nil, &InvalidArgumentError{Field: "travelers", Reason: "must be between 1 and 10"}
	}
	if in.ReturnDate.Before(in.DepartureDate) {
		return nil, &InvalidArgumentError{Field: "returnDate", Reason: "must not be before departure date"}
	}

	// 2. Resolve references
	user, err := s.store.GetUser(in.UserID)
	if err != nil {
		return nil, resolveErr(err, "user")
	}

	destination, err := s.store.GetDestination(in.DestinationID)
	if err != nil {
		return nil, resolveErr(err, "destination")
	}

	pkg, err := s.store.GetPackage(in.PackageID)
	if err != nil {
		return nil, resolveErr(err, "package")
	}

	var accommodation *models.Accommodation
	if in.AccommodationID != nil {
		accommodation, err = s.store.GetAccommodation(*in.AccommodationID)
		if err != nil {
			return nil, resolveErr(err, "accommodation")
		}
	}

	// 3. Derive the total and persist
	total := ComputeTotal(*pkg, in.Travelers, accommodation, in.DepartureDate, in.ReturnDate)

	booking := models.Booking{
		Reference:       uuid.NewString(),
		UserID:          user.ID,
		DestinationID:   destination.ID,
		PackageID:       pkg.ID,
		AccommodationID: in.AccommodationID,
		DepartureDate:   in.DepartureDate,
		ReturnDate:      in.ReturnDate,
		Travelers:       in.Travelers,
		TotalPrice:      total,
		Status:          models.BookingPending,
	}

	created, err := s.store.CreateBooking(booking)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyBookingCreated(*user, *created, *destination); err != nil {
			log.Printf("Failed to notify booking %s: %v", created.Reference, err)
		}
	}

	return created, nil
}

// Quote derives the total for a prospective booking without persisting
// anything. Same resolution order and pricing as CreateBooking.
func (s *Service) Quote(in CreateBookingInput) (int, error) {
	if in.Travelers < MinTravelers || in.Travelers > MaxTravelers {
		return 0, &InvalidArgumentError{Field: "travelers", Reason: "must be between 1 and 10"}
	}

	pkg, err := s.store.GetPackage(in.PackageID)
	if err != nil {
		return 0, resolveErr(err, "package")
	}

	var accommodation *models.Accommodation
	if in.AccommodationID != nil {
		accommodation, err = s.store.GetAccommodation(*in.AccommodationID)
		if err != nil {
			return 0, resolveErr(err, "accommodation")
		}
	}

	return ComputeTotal(*pkg, in.Travelers, accommodation, in.DepartureDate, in.ReturnDate), nil
}

// SetStatus moves a booking to a new lifecycle status. Unknown statuses
// and transitions out of a terminal state are rejected without touching
// the record.
func (s *Service) SetStatus(id uint, status models.BookingStatus) (*models.Booking, error) {
	if !status.Valid() {
		return nil, &InvalidArgumentError{Field: "status", Reason: "must be one of pending, confirmed, cancelled"}
	}

	current, err := s.store.GetBooking(id)
	if err != nil {
		return nil, resolveErr(err, "booking")
	}

	if !CanTransition(current.Status, status) {
		return nil, &TransitionError{From: current.Status, To: status}
	}

	updated, err := s.store.UpdateBookingStatus(id, status)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil && current.Status != updated.Status {
		if err := s.notifier.NotifyBookingStatus(*updated, current.Status); err != nil {
			log.Printf("Failed to notify status change for booking %s: %v", updated.Reference, err)
		}
	}

	return updated, nil
}

func resolveErr(err error, resource string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return err
}
