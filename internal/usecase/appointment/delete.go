package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

// Execute removes the appointment and returns the number of deleted rows.
func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (affected int64, err error) {

	defer func() { metrics.ObserveBooking("delete", err) }()

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return 0, err
	}
	if !actor.CanSee(ap) {
		return 0, httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}

	affected, err = uc.repo.DeleteAppointment(ctx, appointmentID)
	if err != nil {
		uc.log.Error("delete appointment failed", zap.Uint("appointment_id", appointmentID), zap.Error(err))
		return 0, err
	}
	if affected == 0 {
		return 0, httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}

	uc.audit.Dispatch(auditEvent(actor, "appointment_deleted", appointmentID, nil))
	return affected, nil
}
