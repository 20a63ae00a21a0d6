package models

// Clases de transacción aceptadas por POST /transacciones/.
const (
	ClaseCobranza     = "COB"
	ClaseNotaDebito   = "NDE"
	ClaseNotaCredito  = "NCE"
	ClaseDebitoBanco  = "DB"
	ClaseCreditoBanco = "CR"
)

// Formas de pago de una cobranza.
const (
	FormaPagoTransferencia = "TRF"
	FormaPagoPagoMovil     = "PMV"
	FormaPagoCheque        = "CHQ"
	FormaPagoDeposito      = "DEP"
	FormaPagoEfectivo      = "EFC"
	FormaPagoNoAplica      = "N-A"
)

// MonedaBs es la moneda de registro de todas las transacciones.
const MonedaBs = "Bs"

// UsuarioSistema se usa como idUsuario cuando la sesión no trae usuario.
const UsuarioSistema = "Sistema"

// Cobranza es un cobro (clase COB) aplicado a una entidad.
type Cobranza struct {
	IDEntidad          int     `json:"idEntidad"`
	Clase              string  `json:"clase"`
	FormaPago          string  `json:"formaPago"`
	ReferenciaCobro    string  `json:"referenciaCobro"`
	BancoOrigen        string  `json:"bancoOrigen"`
	BancoDestino       string  `json:"bancoDestino"`
	MontoBs            float64 `json:"montoBs"`
	MontoUsdRef        float64 `json:"montoUsdRef"`
	Moneda             string  `json:"moneda"`
	MonedaBanco        string  `json:"monedaBanco,omitempty"`
	Tasa               float64 `json:"tasa"`
	FechaTasa          string  `json:"fechaTasa"`
	FechaCobro         string  `json:"fechaCobro"`
	ObservacionesCobro string  `json:"observacionesCobro"`
	IDUsuario          string  `json:"idUsuario"`
}

// Nota es una nota de débito (NDE) o crédito (NCE) sobre una entidad.
type Nota struct {
	IDEntidad          int     `json:"idEntidad"`
	Clase              string  `json:"clase"`
	Concepto           string  `json:"concepto"`
	FechaCobro         string  `json:"fechaCobro"`
	FechaTasa          string  `json:"fechaTasa"`
	Tasa               float64 `json:"tasa"`
	MontoCobroBs       float64 `json:"montoCobroBs"`
	MontoUsdRef        float64 `json:"montoUsdRef"`
	ObservacionesCobro string  `json:"observacionesCobro"`
	Moneda             string  `json:"moneda"`
	IDUsuario          string  `json:"idUsuario"`
	FormaPago          string  `json:"formaPago"`
}

// Operacion es un débito (DB) o crédito (CR) sobre una cuenta de la comunidad.
type Operacion struct {
	Clase           string  `json:"clase"`
	Concepto        string  `json:"concepto"`
	FechaCobro      string  `json:"fechaCobro"`
	FechaTasa       string  `json:"fechaTasa"`
	Tasa            float64 `json:"tasa"`
	MontoCobroBs    float64 `json:"montoCobroBs"`
	MontoUsdRef     float64 `json:"montoUsdRef"`
	BancoOrigen     string  `json:"bancoOrigen"`
	BancoDestino    int     `json:"bancoDestino"`
	NroCuenta       string  `json:"nroCuenta"`
	ReferenciaCobro string  `json:"referenciaCobro"`
	Moneda          string  `json:"moneda"`
	IDUsuario       string  `json:"idUsuario"`
	FormaPago       string  `json:"formaPago"`
}

// MovimientoBancario es el cuerpo de POST /bancos/movimientos.
type MovimientoBancario struct {
	IDBanco      int     `json:"idBanco"`
	BancoDestino string  `json:"bancoDestino"`
	BancoOrigen  string  `json:"bancoOrigen"`
	IDUsuario    string  `json:"idUsuario"`
	Moneda       string  `json:"moneda"`
	FormaPago    string  `json:"formaPago"`
	Clase        string  `json:"clase"`
	MontoBs      float64 `json:"montoBs"`
	Referencia   string  `json:"referencia"`
	Fecha        string  `json:"fecha"`
	Comentario   string  `json:"comentario"`
}
