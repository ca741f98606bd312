package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type UserHandler struct {
	store store.Store
}

func NewUserHandler(s store.Store) *UserHandler {
	return &UserHandler{store: s}
}

type UserProfile struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type GetUserRequest struct {
	ID uint `path:"userId" doc:"User ID"`
}

type UserProfileResponse struct {
	Body UserProfile
}

func (h *UserHandler) HandleGet(ctx context.Context, input *GetUserRequest) (*UserProfileResponse, error) {
	user, err := h.store.GetUser(input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	res := &UserProfileResponse{}
	res.Body = UserProfile{ID: user.ID, Username: user.Username, Email: user.Email, FullName: user.FullName}
	return res, nil
}

type GetUserByUsernameRequest struct {
	Username string `path:"username" doc:"Username"`
}

func (h *UserHandler) HandleGetByUsername(ctx context.Context, input *GetUserByUsernameRequest) (*UserProfileResponse, error) {
	user, err := h.store.GetUserByUsername(input.Username)
	if err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	res := &UserProfileResponse{}
	res.Body = UserProfile{ID: user.ID, Username: user.Username, Email: user.Email, FullName: user.FullName}
	return res, nil
}
