package normalize

import (
	"strings"

	"github.com/condominios-online/condominios_mid/models"
)

var personalidades = map[string]string{
	models.PersonalidadJuridica: "Jurídica",
	models.PersonalidadNatural:  "Natural",
	models.PersonalidadGobierno: "Gobierno",
}

// PersonalidadLabel traduce el código J/N/G a su etiqueta.
func PersonalidadLabel(code string) string {
	if label, ok := personalidades[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return label
	}
	if code == "" {
		return models.NoAplica
	}
	return code
}

// ListaTexto convierte emails/telefonos en lista. Acepta un arreglo o un texto separado
// por comas; si no queda ningún elemento retorna ["N/A"].
func ListaTexto(value any) []string {
	var out []string
	switch v := value.(type) {
	case []any:
		out = asStrings(v)
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		return []string{models.NoAplica}
	}
	return out
}

// UnirLista es la operación inversa usada al enviar: une por ", " y descarta el marcador N/A.
func UnirLista(list []string) string {
	parts := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" && s != models.NoAplica {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// Proveedor normaliza un registro de /proveedores.
func Proveedor(item map[string]any) models.Proveedor {
	id, _ := toInt(item["id"])
	personalidad := strings.ToUpper(toString(item["personalidad"]))
	return models.Proveedor{
		ID:                id,
		Personalidad:      personalidad,
		PersonalidadLabel: PersonalidadLabel(personalidad),
		IDFiscal:          toString(item["idFiscal"]),
		RazonSocial:       toString(item["razonSocial"]),
		DomicilioFiscal:   toString(item["domicilioFiscal"]),
		Emails:            ListaTexto(item["emails"]),
		Telefonos:         ListaTexto(item["telefonos"]),
		OtrosDatos:        toString(item["otrosDatos"]),
		EstadoActual:      toString(item["estadoActual"]),
		Comentarios:       toString(item["comentarios"]),
		MotivoEliminacion: toString(item["motivoEliminacion"]),
		FechaEliminacion:  toString(item["fechaEliminacion"]),
	}
}

// Proveedores normaliza una lista completa.
func Proveedores(items []map[string]any) []models.Proveedor {
	out := make([]models.Proveedor, 0, len(items))
	for _, item := range items {
		out = append(out, Proveedor(item))
	}
	return out
}
