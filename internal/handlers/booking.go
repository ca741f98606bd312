package handlers

import (
	"context"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/booking"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type BookingHandler struct {
	service *booking.Service
	store   store.Store
}

func NewBookingHandler(service *booking.Service, s store.Store) *BookingHandler {
	return &BookingHandler{service: service, store: s}
}

type CreateBookingRequest struct {
	Body struct {
		UserID          uint      `json:"userId"`
		DestinationID   uint      `json:"destinationId"`
		PackageID       uint      `json:"packageId"`
		AccommodationID *uint     `json:"accommodationId,omitempty"`
		DepartureDate   time.Time `json:"departureDate"`
		ReturnDate      time.Time `json:"returnDate"`
		Travelers       int       `json:"travelers" minimum:"1" maximum:"10"`
		TotalPrice      int       `json:"totalPrice,omitempty" doc:"Ignored; the server always recomputes the total"`
	}
}

type BookingResponse struct {
	Body models.Booking
}

func (h *BookingHandler) HandleCreate(ctx context.Context, input *CreateBookingRequest) (*BookingResponse, error) {
	created, err := h.service.CreateBooking(booking.CreateBookingInput{
		UserID:          input.Body.UserID,
		DestinationID:   input.Body.DestinationID,
		PackageID:       input.Body.PackageID,
		AccommodationID: input.Body.AccommodationID,
		DepartureDate:   input.Body.DepartureDate,
		ReturnDate:      input.Body.ReturnDate,
		Travelers:       input.Body.Travelers,
	})
	if err != nil {
		return nil, domainError(err)
	}
	return &BookingResponse{Body: *created}, nil
}

type GetBookingRequest struct {
	ID uint `path:"id" doc:"Booking ID"`
}

func (h *BookingHandler) HandleGet(ctx context.Context, input *GetBookingRequest) (*BookingResponse, error) {
	record, err := h.store.GetBooking(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Booking not found")
	}
	return &BookingResponse{Body: *record}, nil
}

type UserBookingsRequest struct {
	UserID uint `path:"userId" doc:"User ID"`
}

type BookingListResponse struct {
	Body []models.Booking
}

func (h *BookingHandler) HandleUserBookings(ctx context.Context, input *UserBookingsRequest) (*BookingListResponse, error) {
	if _, err := h.store.GetUser(input.UserID); err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	bookings, err := h.store.BookingsByUser(input.UserID)
	if err != nil {
		return nil, domainError(err)
	}
	return &BookingListResponse{Body: bookings}, nil
}

type SetBookingStatusRequest struct {
	ID   uint `path:"id" doc:"Booking ID"`
	Body struct {
		Status string `json:"status" enum:"pending,confirmed,cancelled"`
	}
}

func (h *BookingHandler) HandleSetStatus(ctx context.Context, input *SetBookingStatusRequest) (*BookingResponse, error) {
	updated, err := h.service.SetStatus(input.ID, models.BookingStatus(input.Body.Status))
	if err != nil {
		return nil, domainError(err)
	}
	return &BookingResponse{Body: *updated}, nil
}

type QuoteRequest struct {
	Body struct {
		PackageID       uint      `json:"packageId"`
		AccommodationID *uint     `json:"accommodationId,omitempty"`
		DepartureDate   time.Time `json:"departureDate"`
		ReturnDate      time.Time `json:"returnDate"`
		Travelers       int       `json:"travelers" minimum:"1" maximum:"10"`
	}
}

type QuoteResponse struct {
	Body struct {
		TotalPrice int `json:"totalPrice"`
	}
}

// HandleQuote prices a prospective booking without persisting anything,
// so the booking wizard can show a running total as selections change.
func (h *BookingHandler) HandleQuote(ctx context.Context, input *QuoteRequest) (*QuoteResponse, error) {
	total, err := h.service.Quote(booking.CreateBookingInput{
		PackageID:       input.Body.PackageID,
		AccommodationID: input.Body.AccommodationID,
		DepartureDate:   input.Body.DepartureDate,
		ReturnDate:      input.Body.ReturnDate,
		Travelers:       input.Body.Travelers,
	})
	if err != nil {
		return nil, domainError(err)
	}

	res := &QuoteResponse{}
	res.Body.TotalPrice = total
	return res, nil
}
