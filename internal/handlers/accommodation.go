package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type AccommodationHandler struct {
	store store.Store
}

func NewAccommodationHandler(s store.Store) *AccommodationHandler {
	return &AccommodationHandler{store: s}
}

func (h *AccommodationHandler) HandleList(ctx context.Context, input *struct{}) (*AccommodationListResponse, error) {
	accommodations, err := h.store.ListAccommodations()
	if err != nil {
		return nil, domainError(err)
	}
	return &AccommodationListResponse{Body: accommodations}, nil
}

type GetAccommodationRequest struct {
	ID uint `path:"id" doc:"Accommodation ID"`
}

type AccommodationResponse struct {
	Body models.Accommodation
}

func (h *AccommodationHandler) HandleGet(ctx context.Context, input *GetAccommodationRequest) (*AccommodationResponse, error) {
	accommodation, err := h.store.GetAccommodation(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Accommodation not found")
	}
	return &AccommodationResponse{Body: *accommodation}, nil
}

type CreateAccommodationRequest struct {
	Body struct {
		DestinationID uint     `json:"destinationId" doc:"Destination this accommodation belongs to"`
		Name          string   `json:"name" minLength:"1"`
		Description   string   `json:"description"`
		ImageURL      string   `json:"imageUrl"`
		Capacity      string   `json:"capacity" doc:"e.g. 2-4 guests"`
		PricePerNight int      `json:"pricePerNight" minimum:"0"`
		Amenities     []string `json:"amenities"`
		Rating        float64  `json:"rating" minimum:"0" maximum:"5"`
	}
}

func (h *AccommodationHandler) HandleCreate(ctx context.Context, input *CreateAccommodationRequest) (*AccommodationResponse, error) {
	// The display location is derived from the destination record, never
	// free text, so two same-named destinations cannot be confused.
	destination, err := h.store.GetDestination(input.Body.DestinationID)
	if err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}

	accommodation, err := h.store.CreateAccommodation(models.Accommodation{
		DestinationID: destination.ID,
		Name:          input.Body.Name,
		Description:   input.Body.Description,
		ImageURL:      input.Body.ImageURL,
		Location:      destination.Name,
		Capacity:      input.Body.Capacity,
		PricePerNight: input.Body.PricePerNight,
		Amenities:     input.Body.Amenities,
		Rating:        input.Body.Rating,
	})
	if err != nil {
		return nil, domainError(err)
	}
	return &AccommodationResponse{Body: *accommodation}, nil
}
