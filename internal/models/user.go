package models

type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"uniqueIndex"`
	Password string `json:"-"` // bcrypt hash, never serialized
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}
