package models

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey"`
	Reference       string        `json:"reference"` // human-facing confirmation code
	UserID          uint          `json:"userId"`
	DestinationID   uint          `json:"destinationId"`
	PackageID       uint          `json:"packageId"`
	AccommodationID *uint         `json:"accommodationId,omitempty"`
	DepartureDate   time.Time     `json:"departureDate"`
	ReturnDate      time.Time     `json:"returnDate"`
	Travelers       int           `json:"travelers"`
	TotalPrice      int           `json:"totalPrice"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"createdAt"`
}
