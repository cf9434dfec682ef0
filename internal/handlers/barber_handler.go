package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	msgEmailTaken       = "Email já registado."
	msgBarberDependents = "Não é possível remover: barbeiro tem reservas associadas"
)

type BarberHandler struct {
	db *gorm.DB
}

func NewBarberHandler(db *gorm.DB) *BarberHandler {
	return &BarberHandler{db: db}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	PhotoURL string `json:"photo_url"`
}

type UpdateBarberRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=6"`
}

type BarberSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []BarberSummary
	if err := h.db.
		Model(&models.Barber{}).
		Select("id, name").
		Order("name ASC").
		Scan(&barbers).Error; err != nil {

		httperr.Respond(c, infraRepo.Translate(err))
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Get(c *gin.Context) {
	barber, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, barber)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	barber := models.Barber{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		PhotoURL:     req.PhotoURL,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		httperr.Respond(c, infraRepo.TranslateWrite(err, msgEmailTaken))
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Update(c *gin.Context) {
	barber, ok := h.load(c)
	if !ok {
		return
	}

	var req UpdateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Name != nil {
		barber.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		barber.Phone = *req.Phone
	}
	if req.PhotoURL != nil {
		barber.PhotoURL = *req.PhotoURL
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
			return
		}
		barber.PasswordHash = string(hashed)
	}

	if err := h.db.Save(barber).Error; err != nil {
		httperr.Respond(c, infraRepo.TranslateWrite(err, msgEmailTaken))
		return
	}

	httpresp.OK(c, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	res := h.db.Delete(&models.Barber{}, id)
	if res.Error != nil {
		httperr.Respond(c, infraRepo.TranslateDelete(res.Error, msgBarberDependents))
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado")
		return
	}

	httpresp.OK(c, gin.H{"success": true, "message": "Barbeiro removido com sucesso"})
}

func (h *BarberHandler) load(c *gin.Context) (*models.Barber, bool) {
	id, ok := paramID(c, "id")
	if !ok {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return nil, false
	}

	var barber models.Barber
	if err := h.db.First(&barber, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "barber_not_found", "Barbeiro não encontrado")
			return nil, false
		}
		httperr.Respond(c, infraRepo.Translate(err))
		return nil, false
	}
	return &barber, true
}
