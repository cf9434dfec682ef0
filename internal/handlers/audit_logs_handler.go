package handlers

import (
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	db  *gorm.DB
	loc *time.Location
}

func NewAuditLogsHandler(db *gorm.DB, loc *time.Location) *AuditLogsHandler {
	return &AuditLogsHandler{db: db, loc: loc}
}

// auditWhere builds the optional filters of the audit log listing.
func auditWhere(action, entity string, from, to *time.Time) sq.And {
	where := sq.And{}
	if action != "" {
		where = append(where, sq.Eq{"action": action})
	}
	if entity != "" {
		where = append(where, sq.Eq{"entity": entity})
	}
	if from != nil {
		where = append(where, sq.GtOrEq{"created_at": *from})
	}
	if to != nil {
		where = append(where, sq.Lt{"created_at": *to})
	}
	return where
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	// --------------------------------------------------
	// Filtros opcionais
	// --------------------------------------------------

	var from, to *time.Time
	if v := c.Query("from"); v != "" {
		if d, err := timezone.ParseDate(v, h.loc); err == nil {
			from = &d
		}
	}
	if v := c.Query("to"); v != "" {
		if d, err := timezone.ParseDate(v, h.loc); err == nil {
			end := d.AddDate(0, 0, 1)
			to = &end
		}
	}

	q := h.db.Model(&models.AuditLog{})
	if where := auditWhere(c.Query("action"), c.Query("entity"), from, to); len(where) > 0 {
		sql, args, err := where.ToSql()
		if err != nil {
			httperr.Internal(c, "audit_filter_failed", "Erro ao filtrar logs.")
			return
		}
		q = q.Where(sql, args...)
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	// --------------------------------------------------
	// Listagem
	// --------------------------------------------------

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	// --------------------------------------------------
	// Response
	// --------------------------------------------------

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
