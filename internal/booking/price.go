package booking

import (
	"math"
	"time"

	"github.com/hamidmukhtar/SpaceTravelHub/internal/models"
)

// Nights returns the number of lodging nights between departure and
// return, rounded to whole days and floored at 1 so a same-day trip is
// still billed one night.
func Nights(departure, returnDate time.Time) int {
	nights := int(math.Round(returnDate.Sub(departure).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}

// ComputeTotal derives a booking's total price in whole USD:
// package price per person times travelers, plus the accommodation's
// nightly rate times nights times travelers when one is selected.
// Pure and deterministic; identical inputs always yield the same total.
func ComputeTotal(pkg models.Package, travelers int, accommodation *models.Accommodation, departure, returnDate time.Time) int {
	total := pkg.Price * travelers
	if accommodation != nil && !departure.IsZero() && !returnDate.IsZero() {
		total += accommodation.PricePerNight * Nights(departure, returnDate) * travelers
	}
	return total
}
