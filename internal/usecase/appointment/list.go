package appointment

import (
	"context"

	domain "github.com/salonhub/booking-api/internal/domain/appointment"
	"github.com/salonhub/booking-api/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(
	repo domain.Repository,
) *ListAppointments {
	return &ListAppointments{
		repo: repo,
	}
}

// Execute lista só os agendamentos do caller, data desc / hora desc.
// Empates de data+hora ficam sem ordem definida.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	userID uint,
) ([]dto.AppointmentDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewAppointmentDTO(&appointments[i]))
	}

	return out, nil
}
