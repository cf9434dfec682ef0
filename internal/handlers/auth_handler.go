package handlers

import (
	"errors"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	infraRepo "github.com/BruksfildServices01/barbershop-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barbershop-booking/internal/middleware"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

type AuthHandler struct {
	db       *gorm.DB
	config   *config.Config
	resolver validators.Resolver
	now      func() time.Time
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		db:       db,
		config:   cfg,
		resolver: net.DefaultResolver,
		now:      time.Now,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type account struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --------- Handlers ---------

// Register creates a client account and logs it in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := normalizeEmail(req.Email)

	if h.config.ValidateEmailDomain && !validators.IsEmailDomainValid(c.Request.Context(), h.resolver, email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	client := models.Client{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Respond(c, infraRepo.TranslateWrite(err, msgEmailTaken))
		return
	}

	h.respondWithToken(c, http.StatusCreated, domain.Client(client.ID), account{
		ID:    client.ID,
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
		Role:  string(domain.RoleClient),
	})
}

// Login authenticates a client.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var client models.Client
	if !h.findAccount(c, &client, req.Email) {
		return
	}
	if !checkPassword(c, client.PasswordHash, req.Password) {
		return
	}

	h.respondWithToken(c, http.StatusOK, domain.Client(client.ID), account{
		ID:    client.ID,
		Name:  client.Name,
		Email: client.Email,
		Phone: client.Phone,
		Role:  string(domain.RoleClient),
	})
}

// StaffLogin authenticates a barber.
func (h *AuthHandler) StaffLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	var barber models.Barber
	if !h.findAccount(c, &barber, req.Email) {
		return
	}
	if !checkPassword(c, barber.PasswordHash, req.Password) {
		return
	}

	h.respondWithToken(c, http.StatusOK, domain.Staff(barber.ID), account{
		ID:    barber.ID,
		Name:  barber.Name,
		Email: barber.Email,
		Phone: barber.Phone,
		Role:  string(domain.RoleStaff),
	})
}

// --------- Helpers ---------

func (h *AuthHandler) findAccount(c *gin.Context, dest any, email string) bool {
	err := h.db.Where("email = ?", normalizeEmail(email)).First(dest).Error
	if err == nil {
		return true
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return false
	}
	httperr.Respond(c, infraRepo.Translate(err))
	return false
}

func checkPassword(c *gin.Context, hash, password string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Credenciais inválidas.")
		return false
	}
	return true
}

func (h *AuthHandler) respondWithToken(c *gin.Context, status int, actor domain.Actor, user account) {
	token, err := middleware.IssueToken(h.config.JWTSecret, actor, h.now())
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar sessão.")
		return
	}

	c.JSON(status, gin.H{
		"user":  user,
		"token": token,
	})
}
