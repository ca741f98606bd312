package store

import "github.com/hamidmukhtar/SpaceTravelHub/internal/models"

// Seed loads the demo catalog: three destinations, three package tiers,
// two accommodations and a few testimonials. Skips when destinations
// already exist so restarting against a persistent backend never
// duplicates the catalog.
func Seed(s Store) error {
	existing, err := s.ListDestinations()
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	station, err := s.CreateDestination(models.Destination{
		Name:        "Orbital Space Station",
		Description: "Experience zero gravity in our state-of-the-art space station with Earth views from every suite.",
		ImageURL:    "https://images.unsplash.com/photo-1614728894747-a83421e2b9c9?auto=format&fit=crop&w=800&q=80",
		Location:    "LEO",
		Distance:    "350 km altitude",
		TravelTime:  "2-day journey",
		Price:       25000,
		Rating:      4.9,
		ReviewCount: 128,
		Featured:    true,
	})
	if err != nil {
		return err
	}

	colony, err := s.CreateDestination(models.Destination{
		Name:        "Lunar Colony Alpha",
		Description: "Visit humanity's first permanent lunar settlement with luxury accommodations and moonwalks.",
		ImageURL:    "https://images.unsplash.com/photo-1581822261290-991b38693d1b?auto=format&fit=crop&w=800&q=80",
		Location:    "MOON",
		Distance:    "384,400 km",
		TravelTime:  "3-day journey",
		Price:       58000,
		Rating:      4.7,
		ReviewCount: 96,
		Featured:    true,
	})
	if err != nil {
		return err
	}

	if _, err := s.CreateDestination(models.Destination{
		Name:        "Mars Transit Hotel",
		Description: "Experience the revolutionary transit hotel on the Mars-Earth route with cosmic observation decks.",
		ImageURL:    "https://images.unsplash.com/photo-1545156521-77bd85671d30?auto=format&fit=crop&w=800&q=80",
		Location:    "ORBIT",
		Distance:    "Mars-Earth route",
		TravelTime:  "7-day stay",
		Price:       112000,
		Rating:      4.8,
		ReviewCount: 77,
		Featured:    true,
		IsNew:       true,
	}); err != nil {
		return err
	}

	packages := []models.Package{
		{
			Name:        "Economy Shuttle",
			Description: "The basic space travel experience",
			Price:       25000,
			Features: []string{
				"Standard pod accommodation",
				"3 zero-gravity experiences",
				"Basic space meals",
				"Shared observation deck access",
			},
			Type: models.PackageEconomy,
		},
		{
			Name:        "Luxury Cabin",
			Description: "Premium space experience with perks",
			Price:       75000,
			Features: []string{
				"Private luxury pod with window",
				"Unlimited zero-gravity sessions",
				"Gourmet space cuisine",
				"Premium observation deck access",
				"One scheduled space walk",
			},
			IsPopular: true,
			Type:      models.PackageLuxury,
		},
		{
			Name:        "VIP Experience",
			Description: "Ultimate exclusive space journey",
			Price:       150000,
			Features: []string{
				"Luxury suite with panoramic views",
				"Customized zero-gravity experiences",
				"Personal chef and premium dining",
				"Private observation deck hours",
				"Multiple private space walks",
				"Professional photography package",
			},
			Type: models.PackageVIP,
		},
	}
	for _, p := range packages {
		if _, err := s.CreatePackage(p); err != nil {
			return err
		}
	}

	accommodations := []models.Accommodation{
		{
			DestinationID: colony.ID,
			Name:          "Lunar Habitat Suite",
			Description:   "Luxury lunar accommodations with Earth views and private lunar terrain access.",
			ImageURL:      "https://images.unsplash.com/photo-1636953056323-9c09fdd74fa6?auto=format&fit=crop&w=800&q=80",
			Location:      colony.Name,
			Capacity:      "2-4 guests",
			PricePerNight: 12500,
			Amenities:     []string{"Panoramic View", "Gravity Control", "Private Airlock"},
			Rating:        4.8,
		},
		{
			DestinationID: station.ID,
			Name:          "Orbital Luxury Pod",
			Description:   "Premium orbital accommodations with 360° Earth views and zero-gravity sleeping chambers.",
			ImageURL:      "https://images.unsplash.com/photo-1518365050014-70fe7232897f?auto=format&fit=crop&w=800&q=80",
			Location:      station.Name,
			Capacity:      "1-2 guests",
			PricePerNight: 8900,
			Amenities:     []string{"Earth View", "Zero-G Suite", "Premium Life Support"},
			Rating:        4.9,
		},
	}
	for _, a := range accommodations {
		if _, err := s.CreateAccommodation(a); err != nil {
			return err
		}
	}

	testimonials := []models.Testimonial{
		{
			Name:        "Sarah J.",
			AvatarURL:   "https://randomuser.me/api/portraits/women/54.jpg",
			Testimonial: "The lunar colony experience was beyond words. Watching Earth rise over the lunar landscape from my suite was a life-changing moment. The staff was incredibly attentive to safety while making the experience magical.",
			Rating:      5,
			PackageType: "Economy Package",
			Destination: "Lunar Colony Alpha",
		},
		{
			Name:        "Marcus T.",
			AvatarURL:   "https://randomuser.me/api/portraits/men/32.jpg",
			Testimonial: "I splurged on the VIP package for my 50th birthday and it was worth every penny. The private space walks with expert guides gave me perspectives on our planet that I'll never forget. The zero-G cuisine was surprisingly delicious!",
			Rating:      4,
			PackageType: "VIP Experience",
			Destination: "Orbital Space Station",
		},
		{
			Name:        "Elena K.",
			AvatarURL:   "https://randomuser.me/api/portraits/women/28.jpg",
			Testimonial: "My partner and I booked the Luxury Cabin for our honeymoon. The staff created such a romantic atmosphere despite being in space! The panoramic views from our cabin were incredible, and the photography package captured memories we'll cherish forever.",
			Rating:      5,
			PackageType: "Luxury Package",
			Destination: "Mars Transit Hotel",
		},
	}
	for _, t := range testimonials {
		if _, err := s.CreateTestimonial(t); err != nil {
			return err
		}
	}

	return nil
}
