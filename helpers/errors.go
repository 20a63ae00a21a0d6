package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// AppError representa un error controlado con código HTTP y mensaje funcional.
type AppError struct {
	Status  int
	Message string
	Err     error
}

// Error implementa la interfaz error.
func (e *AppError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap permite extraer el error original cuando exista.
func (e *AppError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// NewAppError construye un AppError con mensaje y status.
func NewAppError(status int, message string, err error) *AppError {
	return &AppError{Status: status, Message: message, Err: err}
}

// AsAppError convierte cualquier error en AppError. Los errores HTTP del backend conservan
// su status 4xx y su mensaje; los 5xx se reportan como 502. El resto queda en 500.
func AsAppError(err error, defaultMessage string) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	msg := defaultMessage
	if msg == "" {
		msg = "error inesperado"
	}

	var he *HTTPError
	if errors.As(err, &he) {
		status := http.StatusBadGateway
		if he.Status >= 400 && he.Status < 500 {
			status = he.Status
		}
		if m := he.Mensaje(); m != "" {
			msg = m
		}
		return &AppError{Status: status, Message: msg, Err: err}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &AppError{Status: http.StatusGatewayTimeout, Message: msg, Err: err}
	}
	return &AppError{Status: http.StatusInternalServerError, Message: msg, Err: err}
}
