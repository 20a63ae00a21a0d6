// Package normalize convierte los registros sueltos del backend en estructuras canónicas,
// de modo que el resto del MID nunca tenga que preguntar si un campo es texto u objeto.
package normalize

import (
	"strings"

	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/models"
)

// ParseNested acepta un objeto, un texto JSON que empieza por '{' (posiblemente corrupto)
// o ese mismo texto codificado otra vez como string JSON, y retorna el objeto. Cualquier
// otra cosa, o un texto que no se pudo interpretar, retorna nil.
func ParseNested(value any) map[string]any {
	switch v := value.(type) {
	case map[string]any:
		return v
	case string:
		t := strings.TrimSpace(v)
		if !strings.HasPrefix(t, "{") && !strings.HasPrefix(t, `"`) {
			return nil
		}
		parsed, err := envelope.ParseNestedJSON(v)
		if err != nil {
			return nil
		}
		return asMap(parsed)
	}
	return nil
}

// Propietario normaliza el propietario; telefonos y correos siempre quedan presentes.
func Propietario(value any) models.Propietario {
	out := models.Propietario{Correos: []string{}}
	m := ParseNested(value)
	if m == nil {
		return out
	}
	out.Nombre = toString(m["nombre"])
	out.Cedula = toString(m["cedula"])
	out.Propietario = toBool(m["propietario"], false)
	if tel := asMap(m["telefonos"]); tel != nil {
		out.Telefonos.Principal = toString(tel["principal"])
		out.Telefonos.Secundario = toString(tel["secundario"])
	}
	if correos := asStrings(m["correos"]); correos != nil {
		out.Correos = correos
	}
	return out
}

// Inquilino normaliza el inquilino. Sin nombre se considera ausente y retorna el valor vacío.
func Inquilino(value any) models.Inquilino {
	m := ParseNested(value)
	if m == nil {
		return models.Inquilino{}
	}
	out := models.Inquilino{
		Nombre:   toString(m["nombre"]),
		Cedula:   toString(m["cedula"]),
		Telefono: toString(m["telefono"]),
		Correo:   toString(m["correo"]),
	}
	if !out.Presente() {
		return models.Inquilino{}
	}
	return out
}
