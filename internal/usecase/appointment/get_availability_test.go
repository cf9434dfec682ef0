package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func TestGetAvailability_ExcludesBookedSlot(t *testing.T) {
	f := newFixture(t)
	f.book(f.barber, f.short, at(10, 0), domain.StatusConfirmed)

	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID:  f.barber.ID,
		ServiceID: f.short.ID,
		Date:      at(0, 0),
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "10:00")
	assert.Contains(t, slots, "09:30")
	assert.Contains(t, slots, "10:30")
	assert.Len(t, slots, 17)
}

func TestGetAvailability_UsesExistingDuration(t *testing.T) {
	f := newFixture(t)
	f.book(f.barber, f.long, at(14, 0), domain.StatusPending)

	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: f.barber.ID, ServiceID: f.short.ID, Date: at(0, 0),
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "14:00")
	assert.NotContains(t, slots, "14:30")
	assert.Contains(t, slots, "13:30")
	assert.Contains(t, slots, "15:00")
}

func TestGetAvailability_IgnoresInactiveAndOtherBarbers(t *testing.T) {
	f := newFixture(t)
	f.book(f.barber, f.short, at(9, 0), domain.StatusCancelled)
	f.book(f.barber, f.short, at(9, 30), domain.StatusCompleted)
	f.book(f.barber, f.short, at(11, 0), domain.StatusNoShow)
	f.book(f.other, f.short, at(15, 0), domain.StatusConfirmed)

	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: f.barber.ID, ServiceID: f.short.ID, Date: at(0, 0),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCalendar().GenerateSlots(30), mustClocks(t, slots))
}

func TestGetAvailability_LongServiceAroundBooking(t *testing.T) {
	f := newFixture(t)
	f.book(f.barber, f.short, at(10, 0), domain.StatusConfirmed)

	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		BarberID: f.barber.ID, ServiceID: f.long.ID, Date: at(0, 0),
	})

	require.NoError(t, err)
	assert.NotContains(t, slots, "09:30")
	assert.NotContains(t, slots, "10:00")
	assert.NotContains(t, slots, "11:30")
	assert.Contains(t, slots, "09:00")
	assert.Contains(t, slots, "10:30")
}

func TestGetAvailability_Errors(t *testing.T) {
	f := newFixture(t)
	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	ctx := context.Background()

	_, err := uc.Execute(ctx, AvailabilityInput{BarberID: f.barber.ID, Date: at(0, 0)})
	assert.True(t, httperr.IsValidation(err))

	_, err = uc.Execute(ctx, AvailabilityInput{BarberID: f.barber.ID, ServiceID: 999, Date: at(0, 0)})
	assert.True(t, httperr.IsNotFound(err))
	assert.Equal(t, "service_not_found", httperr.CodeOf(err))

	_, err = uc.Execute(ctx, AvailabilityInput{BarberID: 999, ServiceID: f.short.ID, Date: at(0, 0)})
	assert.Equal(t, "barber_not_found", httperr.CodeOf(err))
}

func TestGetAvailability_Idempotent(t *testing.T) {
	f := newFixture(t)
	f.book(f.barber, f.short, at(16, 0), domain.StatusPending)

	uc := NewGetAvailability(f.store, f.settings, zap.NewNop())
	in := AvailabilityInput{BarberID: f.barber.ID, ServiceID: f.short.ID, Date: at(0, 0)}

	first, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, f.store.Count())
}

func mustClocks(t *testing.T, values []string) []domain.Clock {
	t.Helper()
	out := make([]domain.Clock, 0, len(values))
	for _, v := range values {
		c, err := domain.ParseClock(v)
		require.NoError(t, err)
		out = append(out, c)
	}
	return out
}
