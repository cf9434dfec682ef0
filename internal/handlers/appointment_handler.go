package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/dto"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	changeStatus *ucAppointment.ChangeAppointmentStatus
	delete       *ucAppointment.DeleteAppointment
	get          *ucAppointment.GetAppointment
	list         *ucAppointment.ListAppointments
	availability *ucAppointment.GetAvailability
	loc          *time.Location
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	changeStatus *ucAppointment.ChangeAppointmentStatus,
	delete *ucAppointment.DeleteAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListAppointments,
	availability *ucAppointment.GetAvailability,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		update:       update,
		changeStatus: changeStatus,
		delete:       delete,
		get:          get,
		list:         list,
		availability: availability,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID  uint    `json:"client_id"`
	BarberID  uint    `json:"barber_id"`
	ServiceID uint    `json:"service_id"`
	StartTime string  `json:"start_time"`
	Notes     *string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	BarberID  uint    `json:"barber_id"`
	ServiceID uint    `json:"service_id"`
	StartTime string  `json:"start_time"`
	Status    string  `json:"status"`
	Notes     *string `json:"notes"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// parseStart reads start_time in the shop timezone. An empty value is
// left zero for the validator to report as missing.
func (h *AppointmentHandler) parseStart(c *gin.Context, value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, true
	}
	start, err := timezone.ParseDateTime(value, h.loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return time.Time{}, false
	}
	return start, true
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, ok := h.parseStart(c, req.StartTime)
	if !ok {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), middleware.ActorFrom(c), ucAppointment.CreateAppointmentInput{
		ClientID:  req.ClientID,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Start:     start,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap.ID)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, ok := h.parseStart(c, req.StartTime)
	if !ok {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), middleware.ActorFrom(c), ucAppointment.UpdateAppointmentInput{
		ID:        id,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		Start:     start,
		Status:    req.Status,
		Notes:     req.Notes,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success":     true,
		"message":     "Reserva atualizada com sucesso",
		"appointment": dto.NewAppointmentDetail(ap),
	})
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.changeStatus.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"id": ap.ID, "status": ap.Status})
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	affected, err := h.delete.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"success":  true,
		"message":  "Reserva removida com sucesso",
		"affected": affected,
	})
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	out, err := h.get.Execute(c.Request.Context(), middleware.ActorFrom(c), id)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AppointmentHandler) List(c *gin.Context) {
	in := ucAppointment.ListAppointmentsInput{Status: c.Query("status")}

	var ok bool
	if in.BarberID, ok = queryID(c, "barber_id"); !ok {
		httperr.BadRequest(c, "invalid_barber_id", "barber_id inválido.")
		return
	}
	if in.ClientID, ok = queryID(c, "client_id"); !ok {
		httperr.BadRequest(c, "invalid_client_id", "client_id inválido.")
		return
	}

	if dateStr := c.Query("date"); dateStr != "" {
		date, err := timezone.ParseDate(dateStr, h.loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
			return
		}
		in.Date = &date
	}

	out, err := h.list.Execute(c.Request.Context(), middleware.ActorFrom(c), in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	barberID, okBarber := queryID(c, "barber_id")
	serviceID, okService := queryID(c, "service_id")
	if !okBarber || !okService {
		httperr.BadRequest(c, "invalid_params", "Parâmetros inválidos.")
		return
	}

	var date time.Time
	if dateStr := c.Query("date"); dateStr != "" {
		var err error
		if date, err = timezone.ParseDate(dateStr, h.loc); err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida. Use YYYY-MM-DD.")
			return
		}
	}

	slots, err := h.availability.Execute(c.Request.Context(), ucAppointment.AvailabilityInput{
		BarberID:  barberID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
