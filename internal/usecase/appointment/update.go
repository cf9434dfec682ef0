package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	ID        uint
	BarberID  uint
	ServiceID uint
	Start     time.Time
	Status    string
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateAppointment struct {
	repo     domain.Repository
	settings Settings
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewUpdateAppointment(
	repo domain.Repository,
	settings Settings,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:     repo,
		settings: settings,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in UpdateAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() { metrics.ObserveBooking("update", err) }()

	// --------------------------------------------------
	// 1️⃣ Reserva existente e visível
	// --------------------------------------------------
	current, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if !actor.CanSee(current) {
		return nil, httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}

	// --------------------------------------------------
	// 2️⃣ Estado pedido
	// --------------------------------------------------
	var status domain.Status
	if in.Status != "" {
		if status, err = domain.ParseStatus(in.Status); err != nil {
			return nil, err
		}
	}

	if !actor.IsStaff() && status != "" &&
		status != domain.Status(current.Status) && status != domain.StatusCancelled {
		return nil, httperr.ErrForbidden(
			"forbidden",
			"Clientes só podem cancelar reservas.",
		)
	}

	start := in.Start
	if !start.IsZero() {
		start = start.In(uc.settings.location())
	}

	// --------------------------------------------------
	// 3️⃣ Validação + escrita serializadas por barbeiro
	// --------------------------------------------------
	err = serialize(ctx, uc.repo, []uint{current.BarberID, in.BarberID}, func(repo domain.Repository) error {
		// releitura dentro do lock
		stored, err := repo.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}

		booking := domain.Booking{
			ID:          stored.ID,
			ClientID:    stored.ClientID,
			BarberID:    in.BarberID,
			ServiceID:   in.ServiceID,
			Start:       start,
			Status:      status,
			StoredStart: &stored.StartTime,
		}
		if err := uc.settings.validator(repo).Validate(ctx, booking); err != nil {
			return err
		}

		if err := domain.ChangeStatus(stored, status); err != nil {
			return err
		}

		stored.BarberID = in.BarberID
		stored.ServiceID = in.ServiceID
		stored.StartTime = start
		stored.Notes = in.Notes

		if err := repo.UpdateAppointment(ctx, stored); err != nil {
			return err
		}

		ap = stored
		return nil
	})

	if err != nil {
		uc.log.Info("appointment update rejected",
			zap.Uint("appointment_id", in.ID),
			zap.String("code", httperr.CodeOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	if fresh, err := uc.repo.GetAppointment(ctx, ap.ID); err == nil {
		ap = fresh
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(auditEvent(actor, "appointment_updated", ap.ID, map[string]any{
		"status": ap.Status,
		"start":  ap.StartTime,
	}))

	return ap, nil
}
