package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// StatusOf maps a taxonomy error to its HTTP status.
func StatusOf(err error) int {
	var (
		ve ValidationError
		ce ConflictError
		ne NotFoundError
		fe ForbiddenError
	)
	switch {
	case errors.As(err, &ve):
		return http.StatusBadRequest
	case errors.As(err, &ce):
		return http.StatusConflict
	case errors.As(err, &ne):
		return http.StatusNotFound
	case errors.As(err, &fe):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Respond writes err as JSON. Unknown errors never leak their text.
func Respond(c *gin.Context, err error) {
	var (
		ve ValidationError
		ce ConflictError
		ne NotFoundError
		fe ForbiddenError
		se StorageError
	)
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Code, ve.Message)
	case errors.As(err, &ce):
		Conflict(c, ce.Code, ce.Message)
	case errors.As(err, &ne):
		NotFound(c, ne.Code, ne.Message)
	case errors.As(err, &fe):
		Forbidden(c, fe.Code, fe.Message)
	case errors.As(err, &se):
		Internal(c, se.Code, se.Message)
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
