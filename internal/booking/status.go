package booking

import "github.com/hamidmukhtar/SpaceTravelHub/internal/models"

// allowedTransitions is the booking lifecycle: pending and confirmed
// move freely between each other and into cancelled; cancelled is
// terminal and cannot be left.
var allowedTransitions = map[models.BookingStatus]map[models.BookingStatus]bool{
	models.BookingPending: {
		models.BookingConfirmed: true,
		models.BookingCancelled: true,
	},
	models.BookingConfirmed: {
		models.BookingPending:   true,
		models.BookingCancelled: true,
	},
	models.BookingCancelled: {},
}

// CanTransition reports whether a booking may move from one status to
// another. Setting the current status again is a permitted no-op.
func CanTransition(from, to models.BookingStatus) bool {
	if from == to {
		return true
	}
	return allowedTransitions[from][to]
}
