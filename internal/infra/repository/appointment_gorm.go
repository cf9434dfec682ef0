package repository

import (
	"context"
	"fmt"
	"slices"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Catalog
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, translate(err, "service_not_found", "Serviço não encontrado")
	}
	return &service, nil
}

func (r *AppointmentGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, translate(err, "barber_not_found", "Barbeiro não encontrado")
	}
	return &barber, nil
}

func (r *AppointmentGormRepository) GetClient(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, translate(err, "client_not_found", "Cliente não encontrado")
	}
	return &client, nil
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

type occupiedRow struct {
	ID          uint
	StartTime   time.Time
	DurationMin int
}

func (r *AppointmentGormRepository) ListOccupied(
	ctx context.Context,
	barberID uint,
	from time.Time,
	to time.Time,
	excludeID uint,
) ([]domain.Occupied, error) {

	q := r.db.WithContext(ctx).
		Table("appointments").
		Select("appointments.id, appointments.start_time, services.duration_min").
		Joins("JOIN services ON services.id = appointments.service_id").
		Where("appointments.barber_id = ? AND appointments.status IN ?", barberID, activeStatusValues()).
		Where(
			"appointments.start_time < ? AND appointments.start_time + services.duration_min * INTERVAL '1 minute' > ?",
			to,
			from,
		)

	if excludeID != 0 {
		q = q.Where("appointments.id <> ?", excludeID)
	}

	var rows []occupiedRow
	if err := q.Order("appointments.start_time ASC").Scan(&rows).Error; err != nil {
		return nil, translate(err, "", "")
	}

	out := make([]domain.Occupied, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.Occupied{
			ID:          row.ID,
			Start:       row.StartTime,
			DurationMin: row.DurationMin,
		})
	}
	return out, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		return nil, translate(err, "appointment_not_found", "Reserva não encontrada")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.Appointment, error) {

	where, args, err := listWhere(f)
	if err != nil {
		return nil, fmt.Errorf("build appointment filter: %w", err)
	}

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Barber").
		Preload("Service")

	if where != "" {
		q = q.Where(where, args...)
	}

	var apps []models.Appointment
	if err := q.Order("appointments.start_time DESC").Find(&apps).Error; err != nil {
		return nil, translate(err, "", "")
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return translate(
		r.db.WithContext(ctx).Omit(clause.Associations).Create(ap).Error,
		"", "",
	)
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{ID: ap.ID}).
		Updates(map[string]any{
			"barber_id":  ap.BarberID,
			"service_id": ap.ServiceID,
			"start_time": ap.StartTime,
			"status":     ap.Status,
			"notes":      ap.Notes,
		})
	if res.Error != nil {
		return translate(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "appointment_not_found", "Reserva não encontrada")
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateStatus(
	ctx context.Context,
	id uint,
	status domain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{ID: id}).
		Update("status", string(status))
	if res.Error != nil {
		return translate(res.Error, "", "")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "appointment_not_found", "Reserva não encontrada")
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return 0, translate(res.Error, "", "")
	}
	return res.RowsAffected, nil
}

// --------------------------------------------------
// Serialization
// --------------------------------------------------

// WithBarberLock locks the barber rows (ascending id order, no deadlock
// between two writers) and runs fn inside the same transaction.
func (r *AppointmentGormRepository) WithBarberLock(
	ctx context.Context,
	barberIDs []uint,
	fn func(repo domain.Repository) error,
) error {

	ids := slices.Clone(barberIDs)
	slices.Sort(ids)
	ids = slices.Compact(ids)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var barber models.Barber
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Select("id").
				First(&barber, id).Error; err != nil {
				return translate(err, "barber_not_found", "Barbeiro não encontrado")
			}
		}

		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
