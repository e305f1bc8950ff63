package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/salonhub/booking-api/internal/models"
)

type AppointmentDTO struct {
	ID uint `json:"id"`

	UserID      uint `json:"user_id"`
	SalonID     uint `json:"salon_id"`
	HairstyleID uint `json:"hairstyle_id"`

	AppointmentDate string `json:"appointment_date"`
	AppointmentTime string `json:"appointment_time"`

	Status string `json:"status"`
	Notes  string `json:"notes"`

	TotalPrice decimal.Decimal `json:"total_price"`

	UserName      string `json:"user_name"`
	SalonName     string `json:"salon_name"`
	SalonAddress  string `json:"salon_address"`
	HairstyleName string `json:"hairstyle_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAppointmentDTO espera User, Salon e Hairstyle pré-carregados.
func NewAppointmentDTO(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		UserID:          ap.UserID,
		SalonID:         ap.SalonID,
		HairstyleID:     ap.HairstyleID,
		AppointmentDate: ap.AppointmentDate,
		AppointmentTime: ap.AppointmentTime,
		Status:          ap.Status,
		Notes:           ap.Notes,
		TotalPrice:      ap.TotalPrice,
		UserName:        ap.User.FullName(),
		SalonName:       ap.Salon.Name,
		SalonAddress:    ap.Salon.Address,
		HairstyleName:   ap.Hairstyle.Name,
		CreatedAt:       ap.CreatedAt,
		UpdatedAt:       ap.UpdatedAt,
	}
}
