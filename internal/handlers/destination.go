package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type DestinationHandler struct {
	store store.Store
}

func NewDestinationHandler(s store.Store) *DestinationHandler {
	return &DestinationHandler{store: s}
}

type DestinationListResponse struct {
	Body []models.Destination
}

func (h *DestinationHandler) HandleList(ctx context.Context, input *struct{}) (*DestinationListResponse, error) {
	destinations, err := h.store.ListDestinations()
	if err != nil {
		return nil, domainError(err)
	}
	return &DestinationListResponse{Body: destinations}, nil
}

func (h *DestinationHandler) HandleFeatured(ctx context.Context, input *struct{}) (*DestinationListResponse, error) {
	destinations, err := h.store.FeaturedDestinations()
	if err != nil {
		return nil, domainError(err)
	}
	return &DestinationListResponse{Body: destinations}, nil
}

type GetDestinationRequest struct {
	ID uint `path:"id" doc:"Destination ID"`
}

type DestinationResponse struct {
	Body models.Destination
}

func (h *DestinationHandler) HandleGet(ctx context.Context, input *GetDestinationRequest) (*DestinationResponse, error) {
	destination, err := h.store.GetDestination(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}
	return &DestinationResponse{Body: *destination}, nil
}

type CreateDestinationRequest struct {
	Body struct {
		Name        string  `json:"name" minLength:"1"`
		Description string  `json:"description"`
		ImageURL    string  `json:"imageUrl"`
		Location    string  `json:"location" doc:"Region code, e.g. LEO, MOON, ORBIT"`
		Distance    string  `json:"distance"`
		TravelTime  string  `json:"travelTime"`
		Price       int     `json:"price" minimum:"0" doc:"Base per-person price in USD"`
		Rating      float64 `json:"rating" minimum:"0" maximum:"5"`
		ReviewCount int     `json:"reviewCount" minimum:"0"`
		Featured    bool    `json:"featured,omitempty"`
		IsNew       bool    `json:"isNew,omitempty"`
	}
}

func (h *DestinationHandler) HandleCreate(ctx context.Context, input *CreateDestinationRequest) (*DestinationResponse, error) {
	destination, err := h.store.CreateDestination(models.Destination{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		ImageURL:    input.Body.ImageURL,
		Location:    input.Body.Location,
		Distance:    input.Body.Distance,
		TravelTime:  input.Body.TravelTime,
		Price:       input.Body.Price,
		Rating:      input.Body.Rating,
		ReviewCount: input.Body.ReviewCount,
		Featured:    input.Body.Featured,
		IsNew:       input.Body.IsNew,
	})
	if err != nil {
		return nil, domainError(err)
	}
	return &DestinationResponse{Body: *destination}, nil
}

type DestinationAccommodationsRequest struct {
	ID uint `path:"id" doc:"Destination ID"`
}

type AccommodationListResponse struct {
	Body []models.Accommodation
}

func (h *DestinationHandler) HandleAccommodations(ctx context.Context, input *DestinationAccommodationsRequest) (*AccommodationListResponse, error) {
	if _, err := h.store.GetDestination(input.ID); err != nil {
		return nil, huma.Error404NotFound("Destination not found")
	}

	accommodations, err := h.store.AccommodationsByDestination(input.ID)
	if err != nil {
		return nil, domainError(err)
	}
	return &AccommodationListResponse{Body: accommodations}, nil
}
