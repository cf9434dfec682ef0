package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func ChangeStatus(ap *models.Appointment, to Status) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	return nil
}

// IntervalOf returns the calendar occupancy of an appointment.
func IntervalOf(ap *models.Appointment, durationMin int) Interval {
	return NewInterval(ap.StartTime, durationMin)
}

// SameMinute compares two instants at minute granularity.
func SameMinute(a, b time.Time) bool {
	return a.Truncate(time.Minute).Equal(b.Truncate(time.Minute))
}
