package auth

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

func userResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		FullName: user.FullName,
	}
}

type RegisterRequest struct {
	Body struct {
		Username string `json:"username" minLength:"3" doc:"Unique username"`
		Password string `json:"password" minLength:"8" doc:"Account password"`
		Email    string `json:"email" format:"email"`
		FullName string `json:"fullName"`
	}
}

type RegisterResponse struct {
	Body UserResponse
}

func (h *AuthHandler) HandleRegister(ctx context.Context, input *RegisterRequest) (*RegisterResponse, error) {
	hash, err := HashPassword(input.Body.Password)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to hash password")
	}

	user, err := h.store.CreateUser(models.User{
		Username: input.Body.Username,
		Password: hash,
		Email:    input.Body.Email,
		FullName: input.Body.FullName,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, huma.Error409Conflict("Username already exists")
		}
		return nil, huma.Error500InternalServerError("Failed to register user")
	}

	res := &RegisterResponse{}
	res.Body = userResponse(user)
	return res, nil
}

type LoginRequest struct {
	Body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
}

type LoginResponse struct {
	SetCookie string `header:"Set-Cookie"`
	Body      UserResponse
}

func (h *AuthHandler) HandleLogin(ctx context.Context, input *LoginRequest) (*LoginResponse, error) {
	user, err := h.store.GetUserByUsername(input.Body.Username)
	if err != nil || !CheckPassword(user.Password, input.Body.Password) {
		return nil, huma.Error401Unauthorized("Invalid credentials")
	}

	token, err := h.GenerateToken(user.ID)
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to generate token")
	}

	res := &LoginResponse{}
	res.SetCookie = sessionCookie(token)
	res.Body = userResponse(user)
	return res, nil
}

type MeRequest struct {
	AuthInput
}

type MeResponse struct {
	Body UserResponse
}

func (h *AuthHandler) HandleMe(ctx context.Context, input *MeRequest) (*MeResponse, error) {
	userID, err := h.Authorize(ctx, input.Cookie)
	if err != nil {
		return nil, err
	}

	user, err := h.store.GetUser(userID)
	if err != nil {
		return nil, huma.Error404NotFound("User not found")
	}

	res := &MeResponse{}
	res.Body = userResponse(user)
	return res, nil
}
