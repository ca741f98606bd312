package models

type Accommodation struct {
	ID            uint     `json:"id" gorm:"primaryKey"`
	DestinationID uint     `json:"destinationId"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Location      string   `json:"location"` // display name of the destination
	Capacity      string   `json:"capacity"` // e.g. "2-4 guests"
	PricePerNight int      `json:"pricePerNight"`
	Amenities     []string `json:"amenities" gorm:"serializer:json"`
	Rating        float64  `json:"rating"`
}
