package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
)

type AvailabilityInput struct {
	BarberID  uint
	ServiceID uint
	Date      time.Time
}

type GetAvailability struct {
	repo     domain.Repository
	settings Settings
	log      *zap.Logger
}

func NewGetAvailability(repo domain.Repository, settings Settings, log *zap.Logger) *GetAvailability {
	return &GetAvailability{repo: repo, settings: settings, log: log}
}

// Execute lists the free start times of a barber on a day for a service,
// in ascending order. It is read-only.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]string, error) {

	if in.BarberID == 0 || in.ServiceID == 0 || in.Date.IsZero() {
		return nil, httperr.ErrValidation(
			"missing_params",
			"Parâmetros obrigatórios: barber_id, date, service_id",
		)
	}

	service, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetBarber(ctx, in.BarberID); err != nil {
		return nil, err
	}

	loc := uc.settings.location()
	day := time.Date(in.Date.Year(), in.Date.Month(), in.Date.Day(), 0, 0, 0, 0, loc)

	// um único acesso ao storage para o dia inteiro
	occupied, err := uc.repo.ListOccupied(ctx, in.BarberID, day, day.AddDate(0, 0, 1), 0)
	if err != nil {
		uc.log.Error("list occupied failed", zap.Uint("barber_id", in.BarberID), zap.Error(err))
		return nil, err
	}

	slots := []string{}
	for slot := range uc.settings.Calendar.Slots(service.DurationMin) {
		candidate := domain.NewInterval(slot.On(day), service.DurationMin)
		if domain.IsFree(candidate, occupied, 0) {
			slots = append(slots, slot.String())
		}
	}

	metrics.SlotsReturned.Observe(float64(len(slots)))
	return slots, nil
}
