package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/auth"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/booking"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/config"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/database"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/handlers"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/notifier"
	"github.com/hamidmukhtar/SpaceTravelHub/internal/store"
)

func main() {
	// Load Configuration
	cfg := config.LoadConfig()

	// Choose Storage Backend
	var entityStore store.Store
	switch cfg.Storage {
	case "sqlite":
		db := database.Connect(cfg)
		entityStore = store.NewGormStore(db)
	default:
		entityStore = store.NewMemStore()
	}

	if cfg.SeedData {
		if err := store.Seed(entityStore); err != nil {
			log.Fatalf("Failed to seed data: %v", err)
		}
	}

	// Initialize Notifier
	var bookingNotifier notifier.Notifier
	discordNotifier, err := notifier.NewDiscordNotifier(cfg.DiscordBotToken, cfg.DiscordNotificationsChannelID)
	if err != nil {
		log.Printf("Discord notifier not initialized: %v", err)
	} else {
		bookingNotifier = discordNotifier
	}

	// Initialize Handlers
	bookingService := booking.NewService(entityStore, bookingNotifier)
	authHandler := auth.NewAuthHandler(cfg, entityStore)
	userHandler := handlers.NewUserHandler(entityStore)
	destinationHandler := handlers.NewDestinationHandler(entityStore)
	packageHandler := handlers.NewPackageHandler(entityStore)
	accommodationHandler := handlers.NewAccommodationHandler(entityStore)
	testimonialHandler := handlers.NewTestimonialHandler(entityStore)
	bookingHandler := handlers.NewBookingHandler(bookingService, entityStore)

	// Initialize Router
	r := chi.NewRouter()

	// Register Routes
	handlers.RegisterRoutes(r, cfg, authHandler, userHandler, destinationHandler, packageHandler, accommodationHandler, testimonialHandler, bookingHandler)

	// Start Server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Port), r); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
