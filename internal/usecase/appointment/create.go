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

type CreateAppointmentInput struct {
	ClientID  uint
	BarberID  uint
	ServiceID uint
	Start     time.Time
	Notes     *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	settings Settings
	audit    *audit.Dispatcher
	log      *zap.Logger
}

func NewCreateAppointment(
	repo domain.Repository,
	settings Settings,
	audit *audit.Dispatcher,
	log *zap.Logger,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		settings: settings,
		audit:    audit,
		log:      log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() { metrics.ObserveBooking("create", err) }()

	// --------------------------------------------------
	// 1️⃣ Permissões
	// --------------------------------------------------
	switch {
	case actor.IsStaff():
	case actor.Role == domain.RoleClient:
		if in.ClientID == 0 {
			in.ClientID = actor.ID
		}
		if in.ClientID != actor.ID {
			return nil, httperr.ErrForbidden(
				"forbidden",
				"Só é possível criar reservas para a própria conta.",
			)
		}
	default:
		return nil, httperr.ErrForbidden("forbidden", "Sem permissão.")
	}

	// --------------------------------------------------
	// 2️⃣ Data / hora no timezone da barbearia
	// --------------------------------------------------
	start := in.Start
	if !start.IsZero() {
		start = start.In(uc.settings.location())
	}

	booking := domain.Booking{
		ClientID:  in.ClientID,
		BarberID:  in.BarberID,
		ServiceID: in.ServiceID,
		Start:     start,
	}

	// --------------------------------------------------
	// 3️⃣ Validação + escrita serializadas por barbeiro
	// --------------------------------------------------
	err = serialize(ctx, uc.repo, []uint{in.BarberID}, func(repo domain.Repository) error {
		if err := uc.settings.validator(repo).Validate(ctx, booking); err != nil {
			return err
		}

		if _, err := repo.GetClient(ctx, in.ClientID); err != nil {
			return err
		}

		created := &models.Appointment{
			ClientID:  in.ClientID,
			BarberID:  in.BarberID,
			ServiceID: in.ServiceID,
			StartTime: start,
			Status:    string(domain.InitialStatus()),
			Notes:     in.Notes,
		}
		if err := repo.CreateAppointment(ctx, created); err != nil {
			return err
		}

		ap = created
		return nil
	})

	if err != nil {
		if httperr.IsConflict(err) {
			uc.audit.Dispatch(auditEvent(actor, "appointment_conflict", 0, map[string]any{
				"barber_id": in.BarberID,
				"start":     start,
			}))
		}
		uc.log.Info("appointment rejected",
			zap.Uint("barber_id", in.BarberID),
			zap.Time("start", start),
			zap.String("code", httperr.CodeOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(auditEvent(actor, "appointment_created", ap.ID, nil))

	uc.log.Info("appointment created",
		zap.Uint("appointment_id", ap.ID),
		zap.Uint("barber_id", ap.BarberID),
		zap.Time("start", ap.StartTime),
	)

	return ap, nil
}
