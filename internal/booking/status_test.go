package booking

import (
	"testing"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    models.BookingStatus
		to      models.BookingStatus
		allowed bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingPending, models.BookingPending, true},
		{models.BookingCancelled, models.BookingCancelled, true},
	}

	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", tc.from, tc.to, got, tc.allowed)
		}
	}
}
