package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/booking"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

// domainError maps core errors onto transport-level huma errors.
func domainError(err error) error {
	var notFound *booking.NotFoundError
	var invalid *booking.InvalidArgumentError
	var transition *booking.TransitionError

	switch {
	case errors.As(err, &notFound):
		return huma.Error404NotFound(capitalize(notFound.Resource) + " not found")
	case errors.As(err, &invalid):
		return huma.Error400BadRequest(err.Error())
	case errors.As(err, &transition):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, store.ErrNotFound):
		return huma.Error404NotFound("Not found")
	case errors.Is(err, store.ErrConflict):
		return huma.Error409Conflict("Conflict with an existing record")
	}
	return huma.Error500InternalServerError("Internal error: " + err.Error())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
