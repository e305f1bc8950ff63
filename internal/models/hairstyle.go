package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Hairstyle struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:200;not null" json:"name"`

	CategoryID uint     `gorm:"not null" json:"category_id"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Description     string          `gorm:"size:255" json:"description"`
	DurationMinutes int             `gorm:"default:60" json:"duration_minutes"`
	Price           decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	ImageURL        string          `gorm:"size:255" json:"image_url"`
	Active          bool            `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
}
