package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "validation", Outcome(httperr.ErrValidation("x", "x")))
	assert.Equal(t, "conflict", Outcome(httperr.ErrConflict("x", "x")))
	assert.Equal(t, "not_found", Outcome(httperr.ErrNotFound("x", "x")))
	assert.Equal(t, "forbidden", Outcome(httperr.ErrForbidden("x", "x")))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestObserveBooking(t *testing.T) {
	before := testutil.ToFloat64(BookingOutcomes.WithLabelValues("create", "conflict"))
	ObserveBooking("create", httperr.ErrConflict("time_conflict", "x"))
	after := testutil.ToFloat64(BookingOutcomes.WithLabelValues("create", "conflict"))

	assert.Equal(t, before+1, after)
}
