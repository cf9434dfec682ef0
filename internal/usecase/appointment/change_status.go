package appointment

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ChangeAppointmentStatus moves an appointment through the status machine
// without touching its schedule.
type ChangeAppointmentStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zap.Logger
}

func NewChangeAppointmentStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *ChangeAppointmentStatus {
	return &ChangeAppointmentStatus{
		repo:  repo,
		audit: audit,
		log:   log,
	}
}

func (uc *ChangeAppointmentStatus) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	status string,
) (ap *models.Appointment, err error) {

	defer func() { metrics.ObserveBooking("status", err) }()

	to, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	ap, err = uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSee(ap) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}

	if !actor.IsStaff() && to != domain.StatusCancelled {
		return nil, httperr.ErrForbidden("forbidden", "Clientes só podem cancelar reservas.")
	}

	// releitura e escrita sob o lock do barbeiro; só o estado é escrito
	var from string
	err = serialize(ctx, uc.repo, []uint{ap.BarberID}, func(repo domain.Repository) error {
		stored, err := repo.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		from = stored.Status
		if err := domain.ChangeStatus(stored, to); err != nil {
			return err
		}
		if err := repo.UpdateStatus(ctx, stored.ID, to); err != nil {
			uc.log.Error("status update failed", zap.Uint("appointment_id", stored.ID), zap.Error(err))
			return err
		}

		ap = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(auditEvent(actor, "appointment_status_changed", ap.ID, map[string]any{
		"from": from,
		"to":   ap.Status,
	}))

	return ap, nil
}
