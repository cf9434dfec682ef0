package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
)

func TestListWhere(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		where, args, err := listWhere(domain.ListFilter{})
		require.NoError(t, err)
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("status and barber", func(t *testing.T) {
		where, args, err := listWhere(domain.ListFilter{
			Status:   domain.StatusConfirmed,
			BarberID: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "(appointments.status = ? AND appointments.barber_id = ?)", where)
		assert.Equal(t, []any{"confirmed", uint(3)}, args)
	})

	t.Run("day window and client", func(t *testing.T) {
		from := time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)

		where, args, err := listWhere(domain.ListFilter{From: from, To: to, ClientID: 9})
		require.NoError(t, err)
		assert.Equal(t,
			"(appointments.start_time >= ? AND appointments.start_time < ? AND appointments.client_id = ?)",
			where,
		)
		assert.Equal(t, []any{from, to, uint(9)}, args)
	})
}

func TestActiveStatusValues(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, activeStatusValues())
}
