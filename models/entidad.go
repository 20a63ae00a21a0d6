package models

// Clasificaciones de cobranza de una entidad.
const (
	ClasificacionDeudor   = "DEUDOR"
	ClasificacionSolvente = "SOLVENTE"
	ClasificacionMoroso   = "MOROSO"
	ClasificacionVacio    = "VACIO"
	ClasificacionInactivo = "INACTIVO"
)

// Clasificaciones lista los valores válidos en el orden en que se ofrecen al usuario.
var Clasificaciones = []string{
	ClasificacionDeudor,
	ClasificacionSolvente,
	ClasificacionMoroso,
	ClasificacionVacio,
	ClasificacionInactivo,
}

// Condiciones de ocupación.
const (
	CondicionHabitada    = "Habitada"
	CondicionDeshabitada = "Deshabitada"
	CondicionAlquilada   = "Alquilada"
)

// Representante de la entidad ante la administración.
const (
	RepresentantePropietario = "Propietario"
	RepresentanteInquilino   = "Inquilino"
)

const (
	EstadoActivo   = "ACTIVO"
	EstadoInactivo = "INACTIVO"
)

// NoAplica es el valor por defecto de los campos descriptivos ausentes.
const NoAplica = "N/A"

// Telefonos del propietario.
type Telefonos struct {
	Principal  string `json:"principal"`
	Secundario string `json:"secundario"`
}

// Propietario de una entidad. Telefonos y Correos siempre están presentes tras normalizar.
type Propietario struct {
	Nombre      string    `json:"nombre"`
	Cedula      string    `json:"cedula"`
	Telefonos   Telefonos `json:"telefonos"`
	Correos     []string  `json:"correos"`
	Propietario bool      `json:"propietario,omitempty"`
}

// Inquilino de una entidad alquilada.
type Inquilino struct {
	Nombre   string `json:"nombre"`
	Cedula   string `json:"cedula"`
	Telefono string `json:"telefono"`
	Correo   string `json:"correo"`
}

// Presente indica si el registro de inquilino trae al menos un nombre.
func (i Inquilino) Presente() bool {
	return i.Nombre != ""
}

// Vehiculo registrado en la entidad.
type Vehiculo struct {
	ID     int    `json:"id"`
	Placa  string `json:"placa"`
	Marca  string `json:"marca"`
	Modelo string `json:"modelo"`
	Color  string `json:"color"`
}

// Residente de la entidad.
type Residente struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	FecNacimiento string `json:"fecNacimiento"`
	Parentesco    string `json:"parentesco"`
	Status        bool   `json:"status"`
}

// Entidad es una unidad facturable (apartamento, casa, local).
type Entidad struct {
	ID             int         `json:"id"`
	Clase          string      `json:"clase"`
	Nombre         string      `json:"nombre"`
	Referencia     string      `json:"referencia"`
	Representante  string      `json:"representante"`
	Propietario    Propietario `json:"propietario"`
	Inquilino      Inquilino   `json:"inquilino"`
	SaldoActual    string      `json:"saldoActual"`
	Clasificacion  string      `json:"clasificacion"`
	FecUltGestion  string      `json:"fecUltGestion"`
	FecProxGestion string      `json:"fecProxGestion"`
	Comentarios    string      `json:"comentarios"`
	EstadoActual   string      `json:"estadoActual"`
	Activo         bool        `json:"activo"`
	Condicion      string      `json:"condicion"`
	Vehiculos      []Vehiculo  `json:"vehiculos"`
	Residentes     []Residente `json:"residentes"`
}

// EntidadPayload es el cuerpo que recibe POST/PUT /entidades/.
// Propietario e Inquilino viajan como texto JSON.
type EntidadPayload struct {
	Clase          string     `json:"clase"`
	Nombre         string     `json:"nombre"`
	Referencia     string     `json:"referencia"`
	Representante  string     `json:"representante"`
	Propietario    string     `json:"propietario"`
	Inquilino      string     `json:"inquilino"`
	SaldoActual    float64    `json:"saldoActual"`
	Clasificacion  string     `json:"clasificacion"`
	FecUltGestion  *string    `json:"fecUltGestion"`
	FecProxGestion *string    `json:"fecProxGestion"`
	Comentarios    string     `json:"comentarios"`
	EstadoActual   string     `json:"estadoActual"`
	Condicion      string     `json:"condicion"`
	Vehiculos      []Vehiculo `json:"vehiculos,omitempty"`
}

// EliminacionPayload es el cuerpo de DELETE /entidades/{id}.
type EliminacionPayload struct {
	Action            string `json:"action"`
	MotivoEliminacion string `json:"motivoEliminacion"`
}
