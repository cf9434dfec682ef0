package dto

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type AppointmentListDTO struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	BarberName  string    `json:"barber_name"`
	ServiceName string    `json:"service_name"`
}

type AppointmentDetailDTO struct {
	ID        uint      `json:"id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	Notes     *string   `json:"notes"`

	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`

	BarberID       uint   `json:"barber_id"`
	BarberName     string `json:"barber_name"`
	BarberPhotoURL string `json:"barber_photo_url"`

	ServiceID   uint    `json:"service_id"`
	ServiceName string  `json:"service_name"`
	DurationMin int     `json:"duration_min"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func endOf(ap *models.Appointment) time.Time {
	return ap.StartTime.Add(time.Duration(ap.Service.DurationMin) * time.Minute)
}

func NewAppointmentList(ap *models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:          ap.ID,
		StartTime:   ap.StartTime,
		EndTime:     endOf(ap),
		Status:      ap.Status,
		ClientName:  ap.Client.Name,
		BarberName:  ap.Barber.Name,
		ServiceName: ap.Service.Name,
	}
}

func NewAppointmentDetail(ap *models.Appointment) AppointmentDetailDTO {
	return AppointmentDetailDTO{
		ID:             ap.ID,
		StartTime:      ap.StartTime,
		EndTime:        endOf(ap),
		Status:         ap.Status,
		Notes:          ap.Notes,
		ClientID:       ap.ClientID,
		ClientName:     ap.Client.Name,
		ClientEmail:    ap.Client.Email,
		BarberID:       ap.BarberID,
		BarberName:     ap.Barber.Name,
		BarberPhotoURL: ap.Barber.PhotoURL,
		ServiceID:      ap.ServiceID,
		ServiceName:    ap.Service.Name,
		DurationMin:    ap.Service.DurationMin,
		Price:          ap.Service.Price,
		CreatedAt:      ap.CreatedAt,
		UpdatedAt:      ap.UpdatedAt,
	}
}
