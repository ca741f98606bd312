package store

import (
	"sync"
	"time"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

// MemStore keeps every collection in process memory. It is the default
// backend: contents live exactly as long as the process. A single mutex
// serializes id assignment and status updates so concurrent requests
// cannot double-assign an id or lose a write.
type MemStore struct {
	mu sync.Mutex

	users          map[uint]models.User
	destinations   map[uint]models.Destination
	packages       map[uint]models.Package
	accommodations map[uint]models.Accommodation
	testimonials   map[uint]models.Testimonial
	bookings       map[uint]models.Booking

	nextUserID          uint
	nextDestinationID   uint
	nextPackageID       uint
	nextAccommodationID uint
	nextTestimonialID   uint
	nextBookingID       uint
}

func NewMemStore() *MemStore {
	return &MemStore{
		users:          make(map[uint]models.User),
		destinations:   make(map[uint]models.Destination),
		packages:       make(map[uint]models.Package),
		accommodations: make(map[uint]models.Accommodation),
		testimonials:   make(map[uint]models.Testimonial),
		bookings:       make(map[uint]models.Booking),

		nextUserID:          1,
		nextDestinationID:   1,
		nextPackageID:       1,
		nextAccommodationID: 1,
		nextTestimonialID:   1,
		nextBookingID:       1,
	}
}

// Users

func (s *MemStore) GetUser(id uint) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (s *MemStore) GetUserByUsername(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := uint(1); id < s.nextUserID; id++ {
		if user, ok := s.users[id]; ok && user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemStore) CreateUser(user models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Username == user.Username {
			return nil, ErrConflict
		}
	}

	user.ID = s.nextUserID
	s.nextUserID++
	s.users[user.ID] = user
	return &user, nil
}

// Destinations

func (s *MemStore) ListDestinations() ([]models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Destination, 0, len(s.destinations))
	for id := uint(1); id < s.nextDestinationID; id++ {
		if d, ok := s.destinations[id]; ok {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *MemStore) GetDestination(id uint) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.destinations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &d, nil
}

func (s *MemStore) CreateDestination(destination models.Destination) (*models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	destination.ID = s.nextDestinationID
	s.nextDestinationID++
	s.destinations[destination.ID] = destination
	return &destination, nil
}

func (s *MemStore) FeaturedDestinations() ([]models.Destination, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Destination
	for id := uint(1); id < s.nextDestinationID; id++ {
		if d, ok := s.destinations[id]; ok && d.Featured {
			out = append(out, d)
		}
	}
	return out, nil
}

// Packages

func (s *MemStore) ListPackages() ([]models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Package, 0, len(s.packages))
	for id := uint(1); id < s.nextPackageID; id++ {
		if p, ok := s.packages[id]; ok {
			out = append(out, clonePackage(p))
		}
	}
	return out, nil
}

func (s *MemStore) GetPackage(id uint) (*models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.packages[id]
	if !ok {
		return nil, ErrNotFound
	}
	p = clonePackage(p)
	return &p, nil
}

func (s *MemStore) CreatePackage(pkg models.Package) (*models.Package, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg.ID = s.nextPackageID
	s.nextPackageID++
	s.packages[pkg.ID] = clonePackage(pkg)
	return &pkg, nil
}

// Accommodations

func (s *MemStore) ListAccommodations() ([]models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Accommodation, 0, len(s.accommodations))
	for id := uint(1); id < s.nextAccommodationID; id++ {
		if a, ok := s.accommodations[id]; ok {
			out = append(out, cloneAccommodation(a))
		}
	}
	return out, nil
}

func (s *MemStore) GetAccommodation(id uint) (*models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.accommodations[id]
	if !ok {
		return nil, ErrNotFound
	}
	a = cloneAccommodation(a)
	return &a, nil
}

func (s *MemStore) CreateAccommodation(accommodation models.Accommodation) (*models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accommodation.ID = s.nextAccommodationID
	s.nextAccommodationID++
	s.accommodations[accommodation.ID] = cloneAccommodation(accommodation)
	return &accommodation, nil
}

func (s *MemStore) AccommodationsByDestination(destinationID uint) ([]models.Accommodation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Accommodation
	for id := uint(1); id < s.nextAccommodationID; id++ {
		if a, ok := s.accommodations[id]; ok && a.DestinationID == destinationID {
			out = append(out, cloneAccommodation(a))
		}
	}
	return out, nil
}

// Testimonials

func (s *MemStore) ListTestimonials() ([]models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Testimonial, 0, len(s.testimonials))
	for id := uint(1); id < s.nextTestimonialID; id++ {
		if t, ok := s.testimonials[id]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *MemStore) CreateTestimonial(testimonial models.Testimonial) (*models.Testimonial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	testimonial.ID = s.nextTestimonialID
	s.nextTestimonialID++
	s.testimonials[testimonial.ID] = testimonial
	return &testimonial, nil
}

// Bookings

func (s *MemStore) CreateBooking(booking models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.ID = s.nextBookingID
	s.nextBookingID++
	booking.CreatedAt = time.Now()
	s.bookings[booking.ID] = cloneBooking(booking)
	return &booking, nil
}

func (s *MemStore) GetBooking(id uint) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b = cloneBooking(b)
	return &b, nil
}

func (s *MemStore) BookingsByUser(userID uint) ([]models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Booking
	for id := uint(1); id < s.nextBookingID; id++ {
		if b, ok := s.bookings[id]; ok && b.UserID == userID {
			out = append(out, cloneBooking(b))
		}
	}
	return out, nil
}

func (s *MemStore) UpdateBookingStatus(id uint, status models.BookingStatus) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	b.Status = status
	s.bookings[id] = b
	b = cloneBooking(b)
	return &b, nil
}

// Clone helpers so callers never share slice or pointer backing with the
// store's own records.

func clonePackage(p models.Package) models.Package {
	p.Features = append([]string(nil), p.Features...)
	return p
}

func cloneAccommodation(a models.Accommodation) models.Accommodation {
	a.Amenities = append([]string(nil), a.Amenities...)
	return a
}

func cloneBooking(b models.Booking) models.Booking {
	if b.AccommodationID != nil {
		id := *b.AccommodationID
		b.AccommodationID = &id
	}
	return b
}
