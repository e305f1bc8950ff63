package dto

import (
	"github.com/shopspring/decimal"

	"github.com/salonhub/booking-api/internal/models"
)

type CategoryDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type HairstyleDTO struct {
	ID              uint            `json:"id"`
	Name            string          `json:"name"`
	CategoryID      uint            `json:"category_id"`
	CategoryName    string          `json:"category_name"`
	Description     string          `json:"description"`
	DurationMinutes int             `json:"duration_minutes"`
	Price           decimal.Decimal `json:"price"`
	ImageURL        string          `json:"image_url"`
}

type SalonDTO struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	City        string         `json:"city"`
	Phone       string         `json:"phone"`
	Email       string         `json:"email"`
	Latitude    float64        `json:"latitude"`
	Longitude   float64        `json:"longitude"`
	Rating      float64        `json:"rating"`
	OpeningTime string         `json:"opening_time"`
	ClosingTime string         `json:"closing_time"`
	ImageURL    string         `json:"image_url"`
	Services    []HairstyleDTO `json:"services"`

	// Só preenchido quando o caller informa lat/lng na consulta.
	Distance *float64 `json:"distance,omitempty"`
}

func NewCategoryDTO(c *models.Category) CategoryDTO {
	return CategoryDTO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
	}
}

// NewHairstyleDTO espera Category pré-carregada quando o nome
// denormalizado for necessário.
func NewHairstyleDTO(h *models.Hairstyle) HairstyleDTO {
	return HairstyleDTO{
		ID:              h.ID,
		Name:            h.Name,
		CategoryID:      h.CategoryID,
		CategoryName:    h.Category.Name,
		Description:     h.Description,
		DurationMinutes: h.DurationMinutes,
		Price:           h.Price,
		ImageURL:        h.ImageURL,
	}
}

func NewSalonDTO(s *models.Salon, distance *float64) SalonDTO {
	services := make([]HairstyleDTO, 0, len(s.Services))
	for i := range s.Services {
		services = append(services, NewHairstyleDTO(&s.Services[i]))
	}

	return SalonDTO{
		ID:          s.ID,
		Name:        s.Name,
		Address:     s.Address,
		City:        s.City,
		Phone:       s.Phone,
		Email:       s.Email,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		Rating:      s.Rating,
		OpeningTime: s.OpeningTime,
		ClosingTime: s.ClosingTime,
		ImageURL:    s.ImageURL,
		Services:    services,
		Distance:    distance,
	}
}
