package models

type Testimonial struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name"`
	AvatarURL   string `json:"avatarUrl"`
	Testimonial string `json:"testimonial"`
	Rating      int    `json:"rating"`
	PackageType string `json:"packageType"`
	Destination string `json:"destination"`
}
