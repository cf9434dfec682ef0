// Package inmem is an in-memory implementation of the appointment
// repository. It mirrors the gorm repository semantics and backs the
// use-case and handler tests.
package inmem

import (
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type Store struct {
	mu           sync.RWMutex
	services     map[uint]models.Service
	barbers      map[uint]models.Barber
	clients      map[uint]models.Client
	appointments map[uint]models.Appointment
	nextID       uint

	locksMu sync.Mutex
	locks   map[uint]*sync.Mutex

	// FailWith, when set, is returned by every write.
	FailWith error
}

func New() *Store {
	return &Store{
		services:     map[uint]models.Service{},
		barbers:      map[uint]models.Barber{},
		clients:      map[uint]models.Client{},
		appointments: map[uint]models.Appointment{},
		locks:        map[uint]*sync.Mutex{},
	}
}

// --------------------------------------------------
// Seeding
// --------------------------------------------------

func (s *Store) AddService(svc models.Service) models.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc.ID == 0 {
		svc.ID = s.id()
	}
	s.services[svc.ID] = svc
	return svc
}

func (s *Store) AddBarber(b models.Barber) models.Barber {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == 0 {
		b.ID = s.id()
	}
	s.barbers[b.ID] = b
	return b
}

func (s *Store) AddClient(c models.Client) models.Client {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.ID == 0 {
		c.ID = s.id()
	}
	s.clients[c.ID] = c
	return c
}

func (s *Store) AddAppointment(ap models.Appointment) models.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ap.ID == 0 {
		ap.ID = s.id()
	}
	s.appointments[ap.ID] = ap
	return ap
}

func (s *Store) id() uint {
	s.nextID++
	return s.nextID
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (s *Store) GetService(_ context.Context, id uint) (*models.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	svc, ok := s.services[id]
	if !ok {
		return nil, httperr.ErrNotFound("service_not_found", "Serviço não encontrado")
	}
	return &svc, nil
}

func (s *Store) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.barbers[id]
	if !ok {
		return nil, httperr.ErrNotFound("barber_not_found", "Barbeiro não encontrado")
	}
	return &b, nil
}

func (s *Store) GetClient(_ context.Context, id uint) (*models.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.clients[id]
	if !ok {
		return nil, httperr.ErrNotFound("client_not_found", "Cliente não encontrado")
	}
	return &c, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (s *Store) ListOccupied(
	_ context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
	excludeID uint,
) ([]domain.Occupied, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	window := domain.Interval{Start: from, End: to}
	var out []domain.Occupied
	for _, ap := range s.appointments {
		if ap.BarberID != barberID || !domain.Status(ap.Status).IsActive() {
			continue
		}
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		svc, ok := s.services[ap.ServiceID]
		if !ok {
			continue
		}
		occ := domain.Occupied{ID: ap.ID, Start: ap.StartTime, DurationMin: svc.DurationMin}
		if occ.Interval().Overlaps(window) {
			out = append(out, occ)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (s *Store) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ap, ok := s.appointments[id]
	if !ok {
		return nil, httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}
	s.hydrate(&ap)
	return &ap, nil
}

func (s *Store) ListAppointments(_ context.Context, f domain.ListFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Appointment
	for _, ap := range s.appointments {
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		if !f.From.IsZero() && ap.StartTime.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !ap.StartTime.Before(f.To) {
			continue
		}
		if f.BarberID != 0 && ap.BarberID != f.BarberID {
			continue
		}
		if f.ClientID != 0 && ap.ClientID != f.ClientID {
			continue
		}
		s.hydrate(&ap)
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].StartTime.After(out[j].StartTime) })
	return out, nil
}

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	ap.ID = s.id()
	ap.CreatedAt = time.Now()
	ap.UpdatedAt = ap.CreatedAt
	s.appointments[ap.ID] = stripped(*ap)
	return nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	current, ok := s.appointments[ap.ID]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}
	current.BarberID = ap.BarberID
	current.ServiceID = ap.ServiceID
	current.StartTime = ap.StartTime
	current.Status = ap.Status
	current.Notes = ap.Notes
	current.UpdatedAt = time.Now()
	s.appointments[ap.ID] = current
	return nil
}

func (s *Store) UpdateStatus(_ context.Context, id uint, status domain.Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return s.FailWith
	}
	current, ok := s.appointments[id]
	if !ok {
		return httperr.ErrNotFound("appointment_not_found", "Reserva não encontrada")
	}
	current.Status = string(status)
	current.UpdatedAt = time.Now()
	s.appointments[id] = current
	return nil
}

func (s *Store) DeleteAppointment(_ context.Context, id uint) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWith != nil {
		return 0, s.FailWith
	}
	if _, ok := s.appointments[id]; !ok {
		return 0, nil
	}
	delete(s.appointments, id)
	return 1, nil
}

// --------------------------------------------------
// Serialization
// --------------------------------------------------

func (s *Store) WithBarberLock(
	ctx context.Context,
	barberIDs []uint,
	fn func(repo domain.Repository) error,
) error {
	ids := slices.Clone(barberIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	for _, id := range ids {
		if _, err := s.GetBarber(ctx, id); err != nil {
			return err
		}
	}

	for _, id := range ids {
		m := s.barberLock(id)
		m.Lock()
		defer m.Unlock()
	}

	return fn(s)
}

func (s *Store) barberLock(id uint) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	m, ok := s.locks[id]
	if !ok {
		m = &sync.Mutex{}
		s.locks[id] = m
	}
	return m
}

// Count returns the number of stored appointments.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appointments)
}

func (s *Store) hydrate(ap *models.Appointment) {
	ap.Client = s.clients[ap.ClientID]
	ap.Barber = s.barbers[ap.BarberID]
	ap.Service = s.services[ap.ServiceID]
}

func stripped(ap models.Appointment) models.Appointment {
	ap.Client = models.Client{}
	ap.Barber = models.Barber{}
	ap.Service = models.Service{}
	return ap
}

var _ domain.Repository = (*Store)(nil)
