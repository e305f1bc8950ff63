package appointment

import (
	"context"

	domain "github.com/salonhub/booking-api/internal/domain/appointment"
	"github.com/salonhub/booking-api/internal/dto"
	"github.com/salonhub/booking-api/internal/httperr"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(
	repo domain.Repository,
) *GetAppointment {
	return &GetAppointment{
		repo: repo,
	}
}

// Agendamento de outro usuário responde not_found, nunca os dados.
func (uc *GetAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	userID uint,
) (*dto.AppointmentDTO, error) {

	ap, err := uc.repo.GetAppointmentForUser(ctx, appointmentID, userID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	out := dto.NewAppointmentDTO(ap)
	return &out, nil
}
