package httperr

import (
	"errors"
	"fmt"
)

// ===============================
// Error taxonomy
// ===============================

type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation: %s", e.Code)
}

type ConflictError struct {
	Code    string
	Message string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Code)
}

type NotFoundError struct {
	Code    string
	Message string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Code)
}

type ForbiddenError struct {
	Code    string
	Message string
}

func (e ForbiddenError) Error() string {
	return fmt.Sprintf("forbidden: %s", e.Code)
}

// StorageError wraps a data-access failure that did not match a known constraint.
type StorageError struct {
	Code    string
	Message string
	Err     error
}

func (e StorageError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("storage: %s", e.Code)
	}
	return fmt.Sprintf("storage: %s: %v", e.Code, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

// ===============================
// Constructors
// ===============================

func ErrValidation(code, message string) error {
	return ValidationError{Code: code, Message: message}
}

func ErrConflict(code, message string) error {
	return ConflictError{Code: code, Message: message}
}

func ErrNotFound(code, message string) error {
	return NotFoundError{Code: code, Message: message}
}

func ErrForbidden(code, message string) error {
	return ForbiddenError{Code: code, Message: message}
}

func ErrStorage(code string, err error) error {
	return StorageError{Code: code, Message: "Erro ao aceder aos dados.", Err: err}
}

// ===============================
// Inspection
// ===============================

// CodeOf returns the machine code carried by any taxonomy error, or "".
func CodeOf(err error) string {
	var (
		ve ValidationError
		ce ConflictError
		ne NotFoundError
		fe ForbiddenError
		se StorageError
	)
	switch {
	case errors.As(err, &ve):
		return ve.Code
	case errors.As(err, &ce):
		return ce.Code
	case errors.As(err, &ne):
		return ne.Code
	case errors.As(err, &fe):
		return fe.Code
	case errors.As(err, &se):
		return se.Code
	}
	return ""
}

func HasCode(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func IsConflict(err error) bool {
	var ce ConflictError
	return errors.As(err, &ce)
}

func IsNotFound(err error) bool {
	var ne NotFoundError
	return errors.As(err, &ne)
}
