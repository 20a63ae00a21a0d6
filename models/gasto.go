package models

import "github.com/shopspring/decimal"

// Tipos de gasto.
const (
	GastoOrdinario      = "ordinario"
	GastoExtraordinario = "extraordinario"
)

// GastoItem es una línea de la relación de gastos del período.
type GastoItem struct {
	ID        string          `json:"id"`
	Concepto  string          `json:"concepto"`
	Proveedor string          `json:"proveedor"`
	Documento string          `json:"documento"`
	Monto     decimal.Decimal `json:"monto"`
	Saldo     decimal.Decimal `json:"saldo"`
	Especial  bool            `json:"especial"`
	Tipo      string          `json:"tipo"`
}

// DistribucionGastos reparte el total del período entre los inmuebles.
type DistribucionGastos struct {
	TotalOrdinarios      decimal.Decimal `json:"totalOrdinarios"`
	TotalExtraordinarios decimal.Decimal `json:"totalExtraordinarios"`
	TotalGeneral         decimal.Decimal `json:"totalGeneral"`
	NroInmuebles         int             `json:"nroInmuebles"`
	Cuota                decimal.Decimal `json:"cuota"`
}
