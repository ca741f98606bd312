package store

import (
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

// Store is the persistence boundary for all entity collections. Every
// implementation assigns ids itself (starting at 1, incrementing by 1,
// never reused) and hands back records the caller may keep without
// aliasing the store's own copy.
type Store interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user models.User) (*models.User, error)

	// Destinations
	ListDestinations() ([]models.Destination, error)
	GetDestination(id uint) (*models.Destination, error)
	CreateDestination(destination models.Destination) (*models.Destination, error)
	FeaturedDestinations() ([]models.Destination, error)

	// Packages
	ListPackages() ([]models.Package, error)
	GetPackage(id uint) (*models.Package, error)
	CreatePackage(pkg models.Package) (*models.Package, error)

	// Accommodations
	ListAccommodations() ([]models.Accommodation, error)
	GetAccommodation(id uint) (*models.Accommodation, error)
	CreateAccommodation(accommodation models.Accommodation) (*models.Accommodation, error)
	AccommodationsByDestination(destinationID uint) ([]models.Accommodation, error)

	// Testimonials
	ListTestimonials() ([]models.Testimonial, error)
	CreateTestimonial(testimonial models.Testimonial) (*models.Testimonial, error)

	// Bookings
	CreateBooking(booking models.Booking) (*models.Booking, error)
	GetBooking(id uint) (*models.Booking, error)
	BookingsByUser(userID uint) ([]models.Booking, error)
	UpdateBookingStatus(id uint, status models.BookingStatus) (*models.Booking, error)
}
