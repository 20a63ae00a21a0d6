package dto

import (
	"time"

	"github.com/condominios-online/condominios_mid/models"
)

// LoginRequest primera fase de autenticación.
type LoginRequest struct {
	Login string `json:"login" validate:"required"`
	Pwd   string `json:"pwd" validate:"required"`
}

// SelectClientRequest segunda fase: el usuario elige el condominio.
// UserID y NombreUsuario vienen de la respuesta del login.
type SelectClientRequest struct {
	SelectionToken string         `json:"selectionToken" validate:"required"`
	IDCliente      models.FlexInt `json:"idCliente" validate:"required"`
	UserID         string         `json:"userId"`
	NombreUsuario  string         `json:"nombreUsuario"`
	CorreoUsuario  string         `json:"correoUsuario" validate:"omitempty,email"`
}

// SesionResponse es lo que recibe el cliente al abrir la sesión.
type SesionResponse struct {
	Token         string     `json:"token"`
	UserID        string     `json:"userId"`
	NombreUsuario string     `json:"nombreUsuario"`
	ClienteID     int        `json:"clienteId"`
	ExpiraEn      *time.Time `json:"expiraEn,omitempty"`
}
