package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Occupied is an active appointment reduced to what the overlap test needs.
type Occupied struct {
	ID          uint
	Start       time.Time
	DurationMin int
}

func (o Occupied) Interval() Interval {
	return NewInterval(o.Start, o.DurationMin)
}

type ListFilter struct {
	Status   Status
	From     time.Time
	To       time.Time
	BarberID uint
	ClientID uint
}

type Repository interface {
	// -------- Catalog --------
	GetService(ctx context.Context, id uint) (*models.Service, error)
	GetBarber(ctx context.Context, id uint) (*models.Barber, error)
	GetClient(ctx context.Context, id uint) (*models.Client, error)

	// -------- Availability --------
	// ListOccupied returns the pending/confirmed appointments of a barber
	// whose interval overlaps [from, to), skipping excludeID when non-zero.
	ListOccupied(
		ctx context.Context,
		barberID uint,
		from time.Time,
		to time.Time,
		excludeID uint,
	) ([]Occupied, error)

	// -------- Appointment --------
	GetAppointment(ctx context.Context, id uint) (*models.Appointment, error)
	ListAppointments(ctx context.Context, f ListFilter) ([]models.Appointment, error)
	CreateAppointment(ctx context.Context, ap *models.Appointment) error
	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
	// UpdateStatus writes only the status column.
	UpdateStatus(ctx context.Context, id uint, status Status) error
	DeleteAppointment(ctx context.Context, id uint) (int64, error)

	// -------- Serialization --------
	// WithBarberLock runs fn in one transaction holding a lock on every
	// given barber. fn receives a Repository bound to that transaction.
	WithBarberLock(
		ctx context.Context,
		barberIDs []uint,
		fn func(repo Repository) error,
	) error
}
