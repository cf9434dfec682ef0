package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

type ListAppointmentsInput struct {
	Status   string
	Date     *time.Time
	BarberID uint
	ClientID uint
}

type ListAppointments struct {
	repo     domain.Repository
	settings Settings
}

func NewListAppointments(repo domain.Repository, settings Settings) *ListAppointments {
	return &ListAppointments{repo: repo, settings: settings}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter := domain.ListFilter{
		BarberID: in.BarberID,
		ClientID: in.ClientID,
	}

	if in.Status != "" {
		status, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = status
	}

	if in.Date != nil {
		filter.From, filter.To = timezone.DayBounds(*in.Date, uc.settings.location())
	}

	// clientes só veem as próprias reservas
	if !actor.IsStaff() {
		filter.ClientID = actor.ID
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for i := range appointments {
		out = append(out, dto.NewAppointmentList(&appointments[i]))
	}
	return out, nil
}
