package dto

import "github.com/condominios-online/condominios_mid/models"

// EntidadRequest formulario de alta y edición de entidades.
type EntidadRequest struct {
	Clase          string             `json:"clase" validate:"required"`
	Referencia     string             `json:"referencia" validate:"required"`
	Representante  string             `json:"representante"`
	Condicion      string             `json:"condicion"`
	Clasificacion  string             `json:"clasificacion" validate:"omitempty,oneof=DEUDOR SOLVENTE MOROSO VACIO INACTIVO"`
	SaldoActual    Monto              `json:"saldoActual"`
	FecUltGestion  string             `json:"fecUltGestion"`
	FecProxGestion string             `json:"fecProxGestion"`
	Comentarios    string             `json:"comentarios"`
	EstadoActual   *bool              `json:"estadoActual"`
	Propietario    models.Propietario `json:"propietario"`
	Inquilino      models.Inquilino   `json:"inquilino"`
	Vehiculos      []models.Vehiculo  `json:"vehiculos"`
}
