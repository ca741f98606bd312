package models

type Destination struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Location    string  `json:"location"` // e.g. LEO, MOON, ORBIT
	Distance    string  `json:"distance"`
	TravelTime  string  `json:"travelTime"`
	Price       int     `json:"price"` // base per-person price in USD
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Featured    bool    `json:"featured"`
	IsNew       bool    `json:"isNew"`
}
