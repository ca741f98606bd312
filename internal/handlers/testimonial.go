package handlers

import (
	"context"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type TestimonialHandler struct {
	store store.Store
}

func NewTestimonialHandler(s store.Store) *TestimonialHandler {
	return &TestimonialHandler{store: s}
}

type TestimonialListResponse struct {
	Body []models.Testimonial
}

func (h *TestimonialHandler) HandleList(ctx context.Context, input *struct{}) (*TestimonialListResponse, error) {
	testimonials, err := h.store.ListTestimonials()
	if err != nil {
		return nil, domainError(err)
	}
	return &TestimonialListResponse{Body: testimonials}, nil
}

type CreateTestimonialRequest struct {
	Body struct {
		Name        string `json:"name" minLength:"1"`
		AvatarURL   string `json:"avatarUrl"`
		Testimonial string `json:"testimonial" minLength:"1"`
		Rating      int    `json:"rating" minimum:"1" maximum:"5"`
		PackageType string `json:"packageType"`
		Destination string `json:"destination"`
	}
}

type TestimonialResponse struct {
	Body models.Testimonial
}

func (h *TestimonialHandler) HandleCreate(ctx context.Context, input *CreateTestimonialRequest) (*TestimonialResponse, error) {
	testimonial, err := h.store.CreateTestimonial(models.Testimonial{
		Name:        input.Body.Name,
		AvatarURL:   input.Body.AvatarURL,
		Testimonial: input.Body.Testimonial,
		Rating:      input.Body.Rating,
		PackageType: input.Body.PackageType,
		Destination: input.Body.Destination,
	})
	if err != nil {
		return nil, domainError(err)
	}
	return &TestimonialResponse{Body: *testimonial}, nil
}
