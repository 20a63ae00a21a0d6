package dto

import "github.com/condominios-online/condominios_mid/models"

// CobranzaRequest cobro a una entidad. Si no trae tasa se consulta la del día de FechaTasa
// (o FechaCobro).
type CobranzaRequest struct {
	IDEntidad          models.FlexInt `json:"idEntidad" validate:"required"`
	FormaPago          string         `json:"formaPago" validate:"required,oneof=TRF PMV CHQ DEP EFC"`
	ReferenciaCobro    string         `json:"referenciaCobro"`
	BancoOrigen        string         `json:"bancoOrigen"`
	BancoDestino       string         `json:"bancoDestino" validate:"required"`
	MonedaBanco        string         `json:"monedaBanco"`
	MontoBs            Monto          `json:"montoBs" validate:"required"`
	MontoUsdRef        Monto          `json:"montoUsdRef"`
	Tasa               Monto          `json:"tasa"`
	FechaTasa          string         `json:"fechaTasa"`
	FechaCobro         string         `json:"fechaCobro" validate:"required"`
	ObservacionesCobro string         `json:"observacionesCobro"`
}

// NotaRequest nota de débito o crédito sobre una entidad.
type NotaRequest struct {
	IDEntidad          models.FlexInt `json:"idEntidad" validate:"required"`
	Clase              string         `json:"clase" validate:"required,oneof=NDE NCE"`
	Concepto           string         `json:"concepto" validate:"required"`
	FechaCobro         string         `json:"fechaCobro" validate:"required"`
	FechaTasa          string         `json:"fechaTasa"`
	Tasa               Monto          `json:"tasa"`
	MontoBs            Monto          `json:"montoBs" validate:"required"`
	MontoUsdRef        Monto          `json:"montoUsdRef"`
	ObservacionesCobro string         `json:"observacionesCobro"`
}

// OperacionRequest débito o crédito sobre una cuenta de la comunidad.
type OperacionRequest struct {
	Clase           string         `json:"clase" validate:"required,oneof=DB CR"`
	Concepto        string         `json:"concepto" validate:"required"`
	FechaCobro      string         `json:"fechaCobro" validate:"required"`
	FechaTasa       string         `json:"fechaTasa"`
	Tasa            Monto          `json:"tasa"`
	MontoBs         Monto          `json:"montoBs" validate:"required"`
	MontoUsdRef     Monto          `json:"montoUsdRef"`
	BancoOrigen     string         `json:"bancoOrigen"`
	BancoDestino    models.FlexInt `json:"bancoDestino" validate:"required"`
	NroCuenta       string         `json:"nroCuenta"`
	ReferenciaCobro string         `json:"referenciaCobro"`
	FormaPago       string         `json:"formaPago"`
}

// TransaccionResponse resultado de registrar una transacción.
type TransaccionResponse struct {
	Mensaje     string  `json:"mensaje"`
	Clase       string  `json:"clase"`
	Tasa        float64 `json:"tasa"`
	FuenteTasa  string  `json:"fuenteTasa,omitempty"`
	MontoBs     float64 `json:"montoBs"`
	MontoUsdRef float64 `json:"montoUsdRef"`
}
