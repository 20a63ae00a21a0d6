package dto

import "github.com/condominios-online/condominios_mid/models"

// GastosRequest relación de gastos del período a distribuir.
type GastosRequest struct {
	Ordinarios      []models.GastoItem `json:"ordinarios" validate:"dive"`
	Extraordinarios []models.GastoItem `json:"extraordinarios" validate:"dive"`
	NroInmuebles    int                `json:"nroInmuebles" validate:"gte=0"`
}
