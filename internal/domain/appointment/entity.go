package appointment

import (
	"time"

	"github.com/salonhub/booking-api/internal/httperr"
	"github.com/salonhub/booking-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

func ValidateSchedule(date, hhmm string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	if _, err := time.Parse(TimeLayout, hhmm); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}
	return nil
}

type UpdateFields struct {
	Date   *string
	Time   *string
	Status *string
	Notes  *string
}

// ApplyUpdate altera só data, hora, status e notas. Dono e
// total_price ficam como estão: o preço foi congelado na criação.
func ApplyUpdate(ap *models.Appointment, f UpdateFields) error {
	if f.Date != nil {
		if _, err := time.Parse(DateLayout, *f.Date); err != nil {
			return httperr.ErrBusiness("invalid_date")
		}
		ap.AppointmentDate = *f.Date
	}

	if f.Time != nil {
		if _, err := time.Parse(TimeLayout, *f.Time); err != nil {
			return httperr.ErrBusiness("invalid_time")
		}
		ap.AppointmentTime = *f.Time
	}

	if f.Status != nil {
		if !Status(*f.Status).IsValid() {
			return httperr.ErrBusiness("invalid_status")
		}
		ap.Status = *f.Status
	}

	if f.Notes != nil {
		ap.Notes = *f.Notes
	}

	return nil
}
