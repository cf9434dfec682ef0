package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

// AvailabilityChecker answers whether a barber is free for an interval,
// measuring every existing appointment with its own service duration.
type AvailabilityChecker struct {
	repo domain.Repository
}

func NewAvailabilityChecker(repo domain.Repository) *AvailabilityChecker {
	return &AvailabilityChecker{repo: repo}
}

func (c *AvailabilityChecker) ServiceDuration(ctx context.Context, serviceID uint) (int, error) {
	svc, err := c.repo.GetService(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	return svc.DurationMin, nil
}

func (c *AvailabilityChecker) IsAvailable(
	ctx context.Context,
	barberID uint,
	start time.Time,
	durationMin int,
	excludeID uint,
) (bool, error) {

	candidate := domain.NewInterval(start, durationMin)

	occupied, err := c.repo.ListOccupied(ctx, barberID, candidate.Start, candidate.End, excludeID)
	if err != nil {
		return false, err
	}

	return domain.IsFree(candidate, occupied, excludeID), nil
}

var _ domain.Occupancy = (*AvailabilityChecker)(nil)
