package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/httpresp"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the account behind the token, from the table its role
// points at.
func (h *MeHandler) GetMe(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var (
		user account
		err  error
	)

	switch actor.Role {
	case domain.RoleStaff:
		var barber models.Barber
		err = h.db.First(&barber, actor.ID).Error
		user = account{ID: barber.ID, Name: barber.Name, Email: barber.Email, Phone: barber.Phone}
	case domain.RoleClient:
		var client models.Client
		err = h.db.First(&client, actor.ID).Error
		user = account{ID: client.ID, Name: client.Name, Email: client.Email, Phone: client.Phone}
	default:
		httperr.Unauthorized(c, "user_not_in_context", "Autenticação necessária.")
		return
	}

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "user_not_found", "Conta não encontrada.")
			return
		}
		httperr.Respond(c, infraRepo.Translate(err))
		return
	}

	user.Role = string(actor.Role)
	httpresp.OK(c, gin.H{"user": user})
}
