package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// Occupancy is what the validator needs from storage.
type Occupancy interface {
	ServiceDuration(ctx context.Context, serviceID uint) (int, error)
	IsAvailable(
		ctx context.Context,
		barberID uint,
		start time.Time,
		durationMin int,
		excludeID uint,
	) (bool, error)
}

// Booking is a proposed write. ID and StoredStart are set on update only.
type Booking struct {
	ID          uint
	ClientID    uint
	BarberID    uint
	ServiceID   uint
	Start       time.Time
	Status      Status
	StoredStart *time.Time
}

func (b Booking) IsUpdate() bool {
	return b.ID != 0
}

// ===============================
// Validator
// ===============================

type Validator struct {
	calendar  Calendar
	occupancy Occupancy
	now       func() time.Time
}

func NewValidator(
	calendar Calendar,
	occupancy Occupancy,
	now func() time.Time,
) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{
		calendar:  calendar,
		occupancy: occupancy,
		now:       now,
	}
}

// Validate applies the write-path rules in order and stops at the first
// failure. Start must already be expressed in the shop location.
func (v *Validator) Validate(ctx context.Context, b Booking) error {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if err := checkRequired(b); err != nil {
		return err
	}

	// --------------------------------------------------
	// 2️⃣ Data passada
	// --------------------------------------------------
	changed := !b.IsUpdate() || b.StoredStart == nil || !SameMinute(b.Start, *b.StoredStart)
	if changed && b.Start.Before(v.now()) {
		return httperr.ErrValidation(
			"past_date",
			"Não é possível agendar para uma data ou hora passada.",
		)
	}

	cal := v.calendar
	clock := ClockOf(b.Start)

	// --------------------------------------------------
	// 3️⃣ Granularidade
	// --------------------------------------------------
	if b.Start.Minute()%cal.Granularity != 0 || b.Start.Second() != 0 || b.Start.Nanosecond() != 0 {
		return httperr.ErrValidation(
			"invalid_minute",
			fmt.Sprintf("Os horários devem respeitar intervalos de %d minutos.", cal.Granularity),
		)
	}

	// --------------------------------------------------
	// 4️⃣ Horário de funcionamento
	// --------------------------------------------------
	if !cal.WithinHours(clock) {
		return httperr.ErrValidation(
			"outside_business_hours",
			fmt.Sprintf("Fora do horário de funcionamento (%s às %s).", cal.Open, cal.Close),
		)
	}

	// duração do serviço (NotFound se inexistente)
	duration, err := v.occupancy.ServiceDuration(ctx, b.ServiceID)
	if err != nil {
		return err
	}

	// --------------------------------------------------
	// 5️⃣ Pausa de almoço
	// --------------------------------------------------
	lunch := cal.StartsDuringLunch(clock)
	if cal.LunchRule == LunchRuleOverlap {
		lunch = cal.OverlapsLunch(clock, duration)
	}
	if lunch {
		return httperr.ErrValidation(
			"lunch_break",
			fmt.Sprintf("Horário indisponível: pausa de almoço (%s às %s).", cal.LunchStart, cal.LunchEnd),
		)
	}

	// --------------------------------------------------
	// 6️⃣ Dia encerrado
	// --------------------------------------------------
	if cal.IsClosed(b.Start.Weekday()) {
		return httperr.ErrValidation(
			"closed_day",
			"A barbearia está encerrada neste dia.",
		)
	}

	// --------------------------------------------------
	// 7️⃣ Disponibilidade do barbeiro
	// --------------------------------------------------
	ok, err := v.occupancy.IsAvailable(ctx, b.BarberID, b.Start, duration, b.ID)
	if err != nil {
		return err
	}
	if !ok {
		return httperr.ErrConflict(
			"time_conflict",
			"Barbeiro não disponível neste horário",
		)
	}

	return nil
}

func checkRequired(b Booking) error {
	missing := b.BarberID == 0 || b.ServiceID == 0 || b.Start.IsZero()
	if b.IsUpdate() {
		missing = missing || b.Status == ""
	} else {
		missing = missing || b.ClientID == 0
	}

	if missing {
		return httperr.ErrValidation(
			"missing_fields",
			"Preencha todos os campos obrigatórios",
		)
	}
	return nil
}
