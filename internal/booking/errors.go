package booking

import (
	"fmt"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

// NotFoundError names the referenced entity that failed to resolve, so
// callers can report exactly which reference was broken.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// InvalidArgumentError reports a value outside its allowed domain.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// TransitionError reports a status change the lifecycle does not permit.
type TransitionError struct {
	From models.BookingStatus
	To   models.BookingStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition booking from %s to %s", e.From, e.To)
}
