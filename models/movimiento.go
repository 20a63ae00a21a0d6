package models

import "github.com/shopspring/decimal"

// Movimiento es una línea de estado de cuenta, de entidad o de banco.
type Movimiento struct {
	ID         string          `json:"id"`
	Fecha      string          `json:"fecha"`
	Tipo       string          `json:"tipo"`
	Referencia string          `json:"referencia"`
	Concepto   string          `json:"concepto"`
	Debito     decimal.Decimal `json:"debito"`
	Credito    decimal.Decimal `json:"credito"`
	Saldo      decimal.Decimal `json:"saldo"`
	// Display contiene los montos con formato de-DE ("1.234,56").
	Display MovimientoDisplay `json:"display"`
}

// MovimientoDisplay montos listos para mostrar.
type MovimientoDisplay struct {
	Debito  string `json:"debito"`
	Credito string `json:"credito"`
	Saldo   string `json:"saldo"`
}

// EstadoCuenta es el resultado paginado/ordenado de un estado de cuenta.
type EstadoCuenta struct {
	Movimientos  []Movimiento    `json:"movimientos"`
	Total        int             `json:"total"`
	TotalDebito  decimal.Decimal `json:"totalDebito"`
	TotalCredito decimal.Decimal `json:"totalCredito"`
}
