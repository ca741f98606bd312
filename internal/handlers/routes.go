package handlers

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/auth"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/config"
)

func RegisterRoutes(
	r *chi.Mux,
	cfg *config.Config,
	authHandler *auth.AuthHandler,
	userHandler *UserHandler,
	destinationHandler *DestinationHandler,
	packageHandler *PackageHandler,
	accommodationHandler *AccommodationHandler,
	testimonialHandler *TestimonialHandler,
	bookingHandler *BookingHandler,
) {
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if cfg.EnableCORS {
		r.Use(corsMiddleware)
	}

	// Initialize Huma API
	humaConfig := huma.DefaultConfig("Space Travel Hub API", "1.0.0")
	humaConfig.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"cookieAuth": {
			Type: "apiKey",
			In:   "cookie",
			Name: "auth_token",
		},
	}
	api := humachi.New(r, humaConfig)

	// Public routes
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Destinations
	huma.Get(api, "/api/destinations", destinationHandler.HandleList)
	huma.Get(api, "/api/destinations/featured", destinationHandler.HandleFeatured)
	huma.Get(api, "/api/destinations/{id}", destinationHandler.HandleGet)
	huma.Get(api, "/api/destinations/{id}/accommodations", destinationHandler.HandleAccommodations)
	huma.Post(api, "/api/destinations", destinationHandler.HandleCreate, created)

	// Packages
	huma.Get(api, "/api/packages", packageHandler.HandleList)
	huma.Get(api, "/api/packages/{id}", packageHandler.HandleGet)
	huma.Post(api, "/api/packages", packageHandler.HandleCreate, created)

	// Accommodations
	huma.Get(api, "/api/accommodations", accommodationHandler.HandleList)
	huma.Get(api, "/api/accommodations/{id}", accommodationHandler.HandleGet)
	huma.Post(api, "/api/accommodations", accommodationHandler.HandleCreate, created)

	// Testimonials
	huma.Get(api, "/api/testimonials", testimonialHandler.HandleList)
	huma.Post(api, "/api/testimonials", testimonialHandler.HandleCreate, created)

	// Users & auth
	huma.Post(api, "/api/users/register", authHandler.HandleRegister, created)
	huma.Post(api, "/api/users/login", authHandler.HandleLogin)
	huma.Get(api, "/api/users/by-username/{username}", userHandler.HandleGetByUsername)
	huma.Get(api, "/api/users/{userId}", userHandler.HandleGet)
	huma.Get(api, "/api/users/{userId}/bookings", bookingHandler.HandleUserBookings)
	huma.Get(api, "/api/me", authHandler.HandleMe, func(o *huma.Operation) {
		o.Security = []map[string][]string{{"cookieAuth": {}}}
	})

	// Bookings
	huma.Post(api, "/api/bookings", bookingHandler.HandleCreate, created)
	huma.Post(api, "/api/bookings/quote", bookingHandler.HandleQuote)
	huma.Get(api, "/api/bookings/{id}", bookingHandler.HandleGet)
	huma.Patch(api, "/api/bookings/{id}/status", bookingHandler.HandleSetStatus)
}

func created(o *huma.Operation) {
	o.DefaultStatus = http.StatusCreated
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Cookie")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
