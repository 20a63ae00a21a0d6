package dto

import "github.com/condominios-online/condominios_mid/models"

// BancoRequest formulario de cuentas de la comunidad.
type BancoRequest struct {
	Tipo         string            `json:"tipo" validate:"required,oneof=BANCO EFECTIVO ZELLE OTRO"`
	Nombre       string            `json:"nombre" validate:"required"`
	Apodo        string            `json:"apodo"`
	NumeroCuenta string            `json:"numeroCuenta"`
	Moneda       string            `json:"moneda"`
	PagoMovil    *models.PagoMovil `json:"pagoMovil"`
	Activo       *bool             `json:"activo"`
	Comentarios  string            `json:"comentarios"`
}

// MovimientoBancoRequest débito o crédito directo sobre una cuenta.
type MovimientoBancoRequest struct {
	IDBanco    models.FlexInt `json:"idBanco" validate:"required"`
	Tipo       string         `json:"tipo" validate:"required,oneof=debito credito DB CR"`
	FormaPago  string         `json:"formaPago" validate:"required"`
	BancoAux   string         `json:"bancoAux"`
	MontoBs    Monto          `json:"montoBs" validate:"required"`
	Referencia string         `json:"referencia"`
	Fecha      string         `json:"fecha" validate:"required"`
	Comentario string         `json:"comentario"`
}

// EstadoCuentaQuery parámetros de consulta del estado de cuenta.
type EstadoCuentaQuery struct {
	Q       string
	Columna string
	Asc     bool
}
