package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

// Settings carries the shop-wide scheduling configuration shared by the
// appointment use cases.
type Settings struct {
	Calendar domain.Calendar
	Location *time.Location
	Now      func() time.Time
}

func (s Settings) now() time.Time {
	if s.Now != nil {
		return s.Now().In(s.location())
	}
	return time.Now().In(s.location())
}

func (s Settings) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.Local
}

func (s Settings) validator(repo domain.Repository) *domain.Validator {
	return domain.NewValidator(s.Calendar, NewAvailabilityChecker(repo), s.now)
}

// serialize runs fn under the per-barber lock of every non-zero id. With
// no id to lock, fn runs directly against repo.
func serialize(
	ctx context.Context,
	repo domain.Repository,
	barberIDs []uint,
	fn func(repo domain.Repository) error,
) error {
	ids := make([]uint, 0, len(barberIDs))
	for _, id := range barberIDs {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return fn(repo)
	}
	return repo.WithBarberLock(ctx, ids, fn)
}
