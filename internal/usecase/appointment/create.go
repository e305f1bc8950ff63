package appointment

import (
	"context"

	"github.com/salonhub/booking-api/internal/audit"
	domain "github.com/salonhub/booking-api/internal/domain/appointment"
	"github.com/salonhub/booking-api/internal/dto"
	"github.com/salonhub/booking-api/internal/httperr"
	"github.com/salonhub/booking-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint

	SalonID     uint
	HairstyleID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*dto.AppointmentDTO, error) {

	if err := domain.ValidateSchedule(in.Date, in.Time); err != nil {
		return nil, err
	}

	salon, err := uc.repo.GetSalonByID(ctx, in.SalonID)
	if err != nil {
		return nil, httperr.ErrBusiness("salon_not_found")
	}

	style, err := uc.repo.GetHairstyleByID(ctx, in.HairstyleID)
	if err != nil {
		return nil, httperr.ErrBusiness("hairstyle_not_found")
	}

	// O dono vem do contexto autenticado e o preço é congelado
	// aqui: mudanças futuras no hairstyle não afetam o registro.
	ap := &models.Appointment{
		UserID:          in.UserID,
		SalonID:         salon.ID,
		HairstyleID:     style.ID,
		AppointmentDate: in.Date,
		AppointmentTime: in.Time,
		Status:          string(domain.InitialStatus()),
		Notes:           in.Notes,
		TotalPrice:      style.Price,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	// Recarrega com as associações para a resposta trazer os
	// nomes desnormalizados, igual ao retrieve.
	full, err := uc.repo.GetAppointmentForUser(ctx, ap.ID, in.UserID)
	if err != nil {
		return nil, err
	}

	out := dto.NewAppointmentDTO(full)
	return &out, nil
}
