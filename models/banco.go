package models

// Tipos de cuenta.
const (
	TipoBanco    = "BANCO"
	TipoEfectivo = "EFECTIVO"
	TipoZelle    = "ZELLE"
	TipoOtro     = "OTRO"
)

// PagoMovil datos de pago móvil asociados a la cuenta.
type PagoMovil struct {
	Telefono string `json:"telefono"`
	Rif      string `json:"rif"`
}

// DatosBanco detalle de la cuenta. El backend escribe "mondeda".
type DatosBanco struct {
	NumeroCuenta string     `json:"numeroCuenta"`
	Moneda       string     `json:"mondeda"`
	PagoMovil    *PagoMovil `json:"pagoMovil,omitempty"`
}

// Banco es una cuenta de la comunidad (bancaria, caja de efectivo, Zelle u otra).
type Banco struct {
	ID           int        `json:"id"`
	Tipo         string     `json:"tipo"`
	Nombre       string     `json:"nombre"`
	Apodo        string     `json:"apodo"`
	Datos        DatosBanco `json:"datos"`
	EstadoActual string     `json:"estadoActual"`
	Comentarios  string     `json:"comentarios"`
}

// BancoPayload es el cuerpo de POST /bancos/ y PUT /bancos/{id}.
type BancoPayload struct {
	Tipo         string     `json:"tipo"`
	Nombre       string     `json:"nombre"`
	Apodo        string     `json:"apodo"`
	Datos        DatosBanco `json:"datos"`
	EstadoActual string     `json:"estadoActual"`
	Comentarios  string     `json:"comentarios"`
}

// BancoAuxiliar es una institución del catálogo /bancos/auxiliar/list.
type BancoAuxiliar struct {
	Nombre string `json:"Nombre"`
	Codigo string `json:"Codigo"`
}
