package models

// Valores del campo activo que espera el backend.
const (
	ProveedorActivo   = "Activo"
	ProveedorInactivo = "Inactivo"
)

// Personalidad jurídica del proveedor.
const (
	PersonalidadJuridica = "J"
	PersonalidadNatural  = "N"
	PersonalidadGobierno = "G"
)

// Proveedor de bienes o servicios de la comunidad.
type Proveedor struct {
	ID                int      `json:"id"`
	Personalidad      string   `json:"personalidad"`
	PersonalidadLabel string   `json:"personalidadLabel"`
	IDFiscal          string   `json:"idFiscal"`
	RazonSocial       string   `json:"razonSocial"`
	DomicilioFiscal   string   `json:"domicilioFiscal"`
	Emails            []string `json:"emails"`
	Telefonos         []string `json:"telefonos"`
	OtrosDatos        string   `json:"otrosDatos"`
	EstadoActual      string   `json:"estadoActual"`
	Comentarios       string   `json:"comentarios"`
	MotivoEliminacion string   `json:"motivoEliminacion,omitempty"`
	FechaEliminacion  string   `json:"fechaEliminacion,omitempty"`
}

// ProveedorPayload es el cuerpo de POST /proveedores y PUT /proveedores/{id}.
// Emails y telefonos viajan unidos por ", ".
type ProveedorPayload struct {
	Personalidad    string  `json:"personalidad"`
	IDFiscal        string  `json:"idFiscal"`
	RazonSocial     string  `json:"razonSocial"`
	DomicilioFiscal string  `json:"domicilioFiscal"`
	Emails          string  `json:"emails"`
	Telefonos       string  `json:"telefonos"`
	OtrosDatos      *string `json:"otrosDatos"`
	Comentarios     *string `json:"comentarios"`
	Activo          string  `json:"activo"`
}
