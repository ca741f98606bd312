package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type PackageHandler struct {
	store store.Store
}

func NewPackageHandler(s store.Store) *PackageHandler {
	return &PackageHandler{store: s}
}

type PackageListResponse struct {
	Body []models.Package
}

func (h *PackageHandler) HandleList(ctx context.Context, input *struct{}) (*PackageListResponse, error) {
	packages, err := h.store.ListPackages()
	if err != nil {
		return nil, domainError(err)
	}
	return &PackageListResponse{Body: packages}, nil
}

type GetPackageRequest struct {
	ID uint `path:"id" doc:"Package ID"`
}

type PackageResponse struct {
	Body models.Package
}

func (h *PackageHandler) HandleGet(ctx context.Context, input *GetPackageRequest) (*PackageResponse, error) {
	pkg, err := h.store.GetPackage(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("Package not found")
	}
	return &PackageResponse{Body: *pkg}, nil
}

type CreatePackageRequest struct {
	Body struct {
		Name        string   `json:"name" minLength:"1"`
		Description string   `json:"description"`
		Price       int      `json:"price" minimum:"0" doc:"Per-person price in USD"`
		Features    []string `json:"features"`
		IsPopular   bool     `json:"isPopular,omitempty"`
		Type        string   `json:"type" enum:"economy,luxury,vip"`
	}
}

func (h *PackageHandler) HandleCreate(ctx context.Context, input *CreatePackageRequest) (*PackageResponse, error) {
	packageType := models.PackageType(input.Body.Type)
	if !packageType.Valid() {
		return nil, huma.Error400BadRequest("Invalid package type")
	}

	pkg, err := h.store.CreatePackage(models.Package{
		Name:        input.Body.Name,
		Description: input.Body.Description,
		Price:       input.Body.Price,
		Features:    input.Body.Features,
		IsPopular:   input.Body.IsPopular,
		Type:        packageType,
	})
	if err != nil {
		return nil, domainError(err)
	}
	return &PackageResponse{Body: *pkg}, nil
}
