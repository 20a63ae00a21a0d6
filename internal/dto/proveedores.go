package dto

// ProveedorRequest formulario de proveedores.
type ProveedorRequest struct {
	Personalidad    string   `json:"personalidad" validate:"required,oneof=J N G j n g"`
	IDFiscal        string   `json:"idFiscal" validate:"required"`
	RazonSocial     string   `json:"razonSocial" validate:"required"`
	DomicilioFiscal string   `json:"domicilioFiscal"`
	Emails          []string `json:"emails"`
	Telefonos       []string `json:"telefonos"`
	OtrosDatos      string   `json:"otrosDatos"`
	Comentarios     string   `json:"comentarios"`
	Activo          *bool    `json:"activo"`
}
