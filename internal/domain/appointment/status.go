package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

var allStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusCancelled,
	StatusNoShow,
}

// ActiveStatuses occupy the barber's calendar.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed}
}

func InitialStatus() Status {
	return StatusPending
}

func ParseStatus(s string) (Status, error) {
	for _, st := range allStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", httperr.ErrValidation("invalid_status", "Estado de reserva inválido.")
}

func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Transitions
// ===============================

// CanTransition valida a mudança de estado; manter o mesmo estado é sempre permitido.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	ok := false
	switch to {
	case StatusConfirmed:
		ok = from == StatusPending
	case StatusCancelled:
		ok = from.IsActive()
	case StatusCompleted, StatusNoShow:
		ok = from == StatusConfirmed
	}

	if !ok {
		return httperr.ErrValidation(
			"invalid_state",
			"Não é possível passar de \""+string(from)+"\" para \""+string(to)+"\".",
		)
	}
	return nil
}
