package models

import "time"

type Salon struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:200;not null" json:"name"`
	Address string `gorm:"size:255" json:"address"`
	City    string `gorm:"size:100" json:"city"`
	Phone   string `gorm:"size:20" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`

	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`

	Rating      float64 `gorm:"default:4.0" json:"rating"`
	OpeningTime string  `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime string  `gorm:"size:5;default:'20:00'" json:"closing_time"`
	ImageURL    string  `gorm:"size:255" json:"image_url"`
	Active      bool    `gorm:"default:true" json:"active"`

	Services []Hairstyle `gorm:"many2many:salon_services;" json:"services"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
