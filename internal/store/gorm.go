package store

import (
	"errors"
	"time"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"gorm.io/gorm"
)

// GormStore backs the entity collections with a gorm database. Used when
// bookings should survive a restart; MemStore stays the default.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// Users

func (s *GormStore) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (s *GormStore) CreateUser(user models.User) (*models.User, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("username = ?", user.Username).First(&existing).Error
		if err == nil {
			return ErrConflict
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Destinations

func (s *GormStore) ListDestinations() ([]models.Destination, error) {
	var out []models.Destination
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetDestination(id uint) (*models.Destination, error) {
	var d models.Destination
	if err := s.db.First(&d, id).Error; err != nil {
		return nil, translate(err)
	}
	return &d, nil
}

func (s *GormStore) CreateDestination(destination models.Destination) (*models.Destination, error) {
	if err := s.db.Create(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (s *GormStore) FeaturedDestinations() ([]models.Destination, error) {
	var out []models.Destination
	if err := s.db.Where("featured = ?", true).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Packages

func (s *GormStore) ListPackages() ([]models.Package, error) {
	var out []models.Package
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetPackage(id uint) (*models.Package, error) {
	var p models.Package
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (s *GormStore) CreatePackage(pkg models.Package) (*models.Package, error) {
	if err := s.db.Create(&pkg).Error; err != nil {
		return nil, err
	}
	return &pkg, nil
}

// Accommodations

func (s *GormStore) ListAccommodations() ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) GetAccommodation(id uint) (*models.Accommodation, error) {
	var a models.Accommodation
	if err := s.db.First(&a, id).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (s *GormStore) CreateAccommodation(accommodation models.Accommodation) (*models.Accommodation, error) {
	if err := s.db.Create(&accommodation).Error; err != nil {
		return nil, err
	}
	return &accommodation, nil
}

func (s *GormStore) AccommodationsByDestination(destinationID uint) ([]models.Accommodation, error) {
	var out []models.Accommodation
	if err := s.db.Where("destination_id = ?", destinationID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

// Testimonials

func (s *GormStore) ListTestimonials() ([]models.Testimonial, error) {
	var out []models.Testimonial
	if err := s.db.Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) CreateTestimonial(testimonial models.Testimonial) (*models.Testimonial, error) {
	if err := s.db.Create(&testimonial).Error; err != nil {
		return nil, err
	}
	return &testimonial, nil
}

// Bookings

func (s *GormStore) CreateBooking(booking models.Booking) (*models.Booking, error) {
	booking.CreatedAt = time.Now()
	if err := s.db.Create(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (s *GormStore) GetBooking(id uint) (*models.Booking, error) {
	var b models.Booking
	if err := s.db.First(&b, id).Error; err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (s *GormStore) BookingsByUser(userID uint) ([]models.Booking, error) {
	var out []models.Booking
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *GormStore) UpdateBookingStatus(id uint, status models.BookingStatus) (*models.Booking, error) {
	var b models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&b, id).Error; err != nil {
			return translate(err)
		}
		b.Status = status
		return tx.Model(&b).Update("status", status).Error
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
