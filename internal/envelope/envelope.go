// Package envelope desenvuelve las respuestas del backend de condominios, cuyo
// contenido real llega como texto JSON escapado dentro de data[0]["@res"].
package envelope

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jmespath/go-jmespath"
)

// MensajeFormatoDatos es el aviso que se muestra al usuario cuando el contenido anidado no se pudo interpretar.
const MensajeFormatoDatos = "Error en el formato de datos anidados del servidor."

var (
	// ErrDatosAnidados indica que el texto de @res no es JSON válido ni después de sanearlo.
	ErrDatosAnidados = errors.New("formato de datos anidados inválido")
	// ErrRespuestaInvalida indica que el cuerpo HTTP completo no es JSON.
	ErrRespuestaInvalida = errors.New("respuesta del servidor no es JSON")
)

// maxNiveles limita cuántas veces se desenrolla un texto doblemente codificado.
const maxNiveles = 3

var (
	rutaEnvuelta = jmespath.MustCompile(`data[0]."@res"`)
	rutaArreglo  = jmespath.MustCompile(`[0]."@res"`)

	// artefactoRN corresponde a un \r\n del backend que llega sin las barras.
	artefactoRN = regexp.MustCompile(`rn\s+`)

	saltosDeLinea = strings.NewReplacer("\n", "", "\r", "")
)

// Payload es el cuerpo anidado {response, status, body}.
type Payload struct {
	Response string
	Status   string
	Body     any
}

// Records retorna body cuando es un arreglo; en cualquier otro caso un slice vacío.
func (p Payload) Records() []any {
	if list, ok := p.Body.([]any); ok {
		return list
	}
	return []any{}
}

// Exitoso reporta si el status del backend es "success" u "ok".
func (p Payload) Exitoso() bool {
	s := strings.ToLower(strings.TrimSpace(p.Status))
	return s == "success" || s == "ok"
}

// Extract lee data[0]["@res"] (o [0]["@res"] cuando el backend responde con un arreglo).
// Si la ruta no existe o el valor no es texto retorna ("", false).
func Extract(v any) (string, bool) {
	var expr *jmespath.JMESPath
	switch v.(type) {
	case map[string]any:
		expr = rutaEnvuelta
	case []any:
		expr = rutaArreglo
	default:
		return "", false
	}
	res, err := expr.Search(v)
	if err != nil {
		return "", false
	}
	s, ok := res.(string)
	return s, ok
}

// Sanitize aplica, en orden: \" -> ", elimina saltos de línea y retornos de carro,
// y elimina el literal "rn" seguido de espacios. ParseNestedJSON solo lo aplica cuando el
// texto no es JSON válido, así que un texto válido nunca se reescribe.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = saltosDeLinea.Replace(s)
	return artefactoRN.ReplaceAllString(s, "")
}

// ParseNestedJSON interpreta un texto JSON que puede venir doblemente codificado o corrupto.
// Primero intenta el texto tal cual; si falla, lo sanea y vuelve a intentar.
func ParseNestedJSON(s string) (any, error) {
	return parseNested(s, 0)
}

func parseNested(s string, nivel int) (any, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: texto vacío", ErrDatosAnidados)
	}

	var v any
	err := json.Unmarshal([]byte(trimmed), &v)
	if err != nil {
		if err2 := json.Unmarshal([]byte(Sanitize(trimmed)), &v); err2 != nil {
			return nil, fmt.Errorf("%w: %v", ErrDatosAnidados, err2)
		}
	}

	if inner, ok := v.(string); ok && nivel < maxNiveles {
		return parseNested(inner, nivel+1)
	}
	return v, nil
}

// ParsePayload interpreta el texto de @res como {response, status, body}.
func ParsePayload(s string) (Payload, error) {
	v, err := ParseNestedJSON(s)
	if err != nil {
		return Payload{}, err
	}
	return payloadFromValue(v), nil
}

// Unwrap recorre los pasos 1 a 3 sobre un valor ya decodificado. Una ruta ausente
// no es error: retorna un Payload vacío.
func Unwrap(v any) (Payload, error) {
	res, ok := Extract(v)
	if !ok {
		return Payload{}, nil
	}
	return ParsePayload(res)
}

// DecodeValue retorna los registros del body a partir de un valor ya decodificado.
// Nunca retorna nil; el error, si existe, es solo diagnóstico.
func DecodeValue(v any) ([]any, error) {
	p, err := Unwrap(v)
	if err != nil {
		return []any{}, err
	}
	return p.Records(), nil
}

// Decode retorna los registros del body contenidos en un cuerpo HTTP crudo.
func Decode(raw []byte) ([]any, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return []any{}, err
	}
	return DecodeValue(v)
}

// DecodeRecords es como Decode pero descarta los elementos que no son objetos.
func DecodeRecords(raw []byte) ([]map[string]any, error) {
	list, err := Decode(raw)
	out := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out, err
}

// DecodeFirst es la variante de detalle: toma body[0] y lo mezcla sobre fallback.
// Los campos de fallback se conservan cuando la consulta fresca no los produce.
func DecodeFirst(raw []byte, fallback map[string]any) (map[string]any, error) {
	out := make(map[string]any, len(fallback))
	for k, v := range fallback {
		out[k] = v
	}

	list, err := Decode(raw)
	if err != nil || len(list) == 0 {
		return out, err
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return out, nil
	}
	for k, v := range first {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out, nil
}

// DecodePlain interpreta respuestas que llegan sin envoltura ({response, status, body}),
// como la de proveedores. Si encuentra @res, usa la envoltura.
func DecodePlain(raw []byte) (Payload, error) {
	v, err := decodeRaw(raw)
	if err != nil {
		return Payload{}, err
	}
	if _, ok := Extract(v); ok {
		return Unwrap(v)
	}
	return payloadFromValue(v), nil
}

// Encode envuelve list con la forma documentada {data:[{"@res": "<json>"}]}.
func Encode(list []any) ([]byte, error) {
	inner, err := json.Marshal(map[string]any{
		"response": "ok",
		"status":   "success",
		"body":     list,
	})
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]any{
		"data": []any{map[string]any{"@res": string(inner)}},
	})
}

func decodeRaw(raw []byte) (any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRespuestaInvalida, err)
	}
	return v, nil
}

func payloadFromValue(v any) Payload {
	m, ok := v.(map[string]any)
	if !ok {
		return Payload{}
	}
	return Payload{
		Response: texto(m["response"]),
		Status:   texto(m["status"]),
		Body:     m["body"],
	}
}

func texto(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
