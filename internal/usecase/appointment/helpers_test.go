package appointment

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/repository/inmem"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Monday
var testNow = time.Date(2024, time.June, 10, 8, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2024, time.June, 10, hour, minute, 0, 0, time.UTC)
}

type fixture struct {
	store    *inmem.Store
	settings Settings
	events   *recordedEvents

	barber  models.Barber
	other   models.Barber
	client  models.Client
	client2 models.Client
	short   models.Service // 30 min
	long    models.Service // 60 min
}

type recordedEvents struct {
	mu      sync.Mutex
	actions []string
}

func (r *recordedEvents) Write(_ context.Context, ev audit.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, ev.Action)
	return nil
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := inmem.New()
	f := &fixture{
		store:  store,
		events: &recordedEvents{},
		settings: Settings{
			Calendar: domain.DefaultCalendar(),
			Location: time.UTC,
			Now:      func() time.Time { return testNow },
		},
	}

	f.barber = store.AddBarber(models.Barber{Name: "Rui"})
	f.other = store.AddBarber(models.Barber{Name: "Tiago"})
	f.client = store.AddClient(models.Client{Name: "Ana", Email: "ana@example.com"})
	f.client2 = store.AddClient(models.Client{Name: "Bruno", Email: "bruno@example.com"})
	f.short = store.AddService(models.Service{Name: "Corte", DurationMin: 30, Price: 12, Active: true})
	f.long = store.AddService(models.Service{Name: "Corte + Barba", DurationMin: 60, Price: 20, Active: true})

	return f
}

// dispatcher returns a dispatcher and a function that drains it and returns
// the recorded actions.
func (f *fixture) dispatcher() (*audit.Dispatcher, func() []string) {
	d := audit.NewDispatcher(f.events, zap.NewNop())
	return d, func() []string {
		d.Close()
		f.events.mu.Lock()
		defer f.events.mu.Unlock()
		return append([]string(nil), f.events.actions...)
	}
}

func (f *fixture) book(barber models.Barber, svc models.Service, start time.Time, status domain.Status) models.Appointment {
	return f.store.AddAppointment(models.Appointment{
		ClientID:  f.client.ID,
		BarberID:  barber.ID,
		ServiceID: svc.ID,
		StartTime: start,
		Status:    string(status),
	})
}

func ptr[T any](v T) *T { return &v }
