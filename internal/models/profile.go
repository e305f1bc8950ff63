package models

import "time"

// Criado junto com o User no registro; nunca existe sozinho.
type Profile struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	UserID uint `gorm:"uniqueIndex;not null" json:"-"`

	Phone    string `gorm:"size:20" json:"phone"`
	Location string `gorm:"size:200" json:"location"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`

	CreatedAt time.Time `json:"-"`
}
