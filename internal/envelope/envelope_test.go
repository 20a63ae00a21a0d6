package envelope

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeWellFormedEnvelope(t *testing.T) {
	raw := []byte(`{"data":[{"@res":"{\"response\":\"ok\",\"status\":\"success\",\"body\":[{\"id\":1,\"referencia\":\"A-1\"}]}"}]}`)

	list, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, map[string]any{"id": float64(1), "referencia": "A-1"}, list[0])
}

func TestDecodeMissingPathYieldsEmptyList(t *testing.T) {
	cases := map[string]string{
		"data vacío":      `{"data":[]}`,
		"sin data":        `{"otra":1}`,
		"sin @res":        `{"data":[{"x":"y"}]}`,
		"@res no texto":   `{"data":[{"@res":12}]}`,
		"cuerpo vacío":    ``,
		"arreglo vacío":   `[]`,
		"data no arreglo": `{"data":{"@res":"{}"}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			list, err := Decode([]byte(raw))
			assert.NoError(t, err)
			assert.NotNil(t, list)
			assert.Empty(t, list)
		})
	}
}

func TestDecodeBareArrayEnvelope(t *testing.T) {
	raw := []byte(`[{"@res":"{\"status\":\"success\",\"body\":[{\"Nombre\":\"BANESCO\",\"Codigo\":\"0134\"}]}"}]`)

	list, err := Decode(raw)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "0134", list[0].(map[string]any)["Codigo"])
}

func TestDecodeCorruptedNestedText(t *testing.T) {
	// @res llega como {\"status\":\"success\",rn \"body\":[]}
	raw := []byte(`{"data":[{"@res":"{\\\"status\\\":\\\"success\\\",rn \\\"body\\\":[]}"}]}`)

	list, err := Decode(raw)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)

	p, err := ParsePayload(`{\"status\":\"success\",rn \"body\":[]}`)
	require.NoError(t, err)
	assert.Equal(t, "success", p.Status)
	assert.Equal(t, []any{}, p.Body)
}

func TestDecodeEscapedQuotesAndRNTogether(t *testing.T) {
	nested := `{\"status\":\"success\",rn   \"body\":[{\"title\":\"Torre A\"}]}`
	p, err := ParsePayload(nested)
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"title": "Torre A"}}, p.Records())
}

func TestDecodeNotJSONRecordsError(t *testing.T) {
	raw := []byte(`{"data":[{"@res":"not json at all"}]}`)

	list, err := Decode(raw)
	assert.NotNil(t, list)
	assert.Empty(t, list)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatosAnidados))
}

func TestDecodeBodyNotArray(t *testing.T) {
	for _, body := range []string{`null`, `{\"id\":1}`, `\"texto\"`, `7`} {
		raw := []byte(`{"data":[{"@res":"{\"status\":\"success\",\"body\":` + body + `}"}]}`)
		list, err := Decode(raw)
		assert.NoError(t, err, body)
		assert.NotNil(t, list, body)
		assert.Empty(t, list, body)
	}
}

func TestDecodeOuterBodyNotJSON(t *testing.T) {
	list, err := Decode([]byte(`<html>502</html>`))
	assert.Empty(t, list)
	assert.True(t, errors.Is(err, ErrRespuestaInvalida))
}

func TestDecodeDoubleEncodedNestedText(t *testing.T) {
	// El texto de @res es a su vez un string JSON.
	p, err := ParsePayload(`"{\"status\":\"ok\",\"body\":[1,2]}"`)
	require.NoError(t, err)
	assert.True(t, p.Exitoso())
	assert.Equal(t, []any{float64(1), float64(2)}, p.Records())
}

func TestRoundTrip(t *testing.T) {
	lists := [][]any{
		{},
		{map[string]any{"id": float64(1), "referencia": "A-1"}},
		{
			map[string]any{"id": float64(2), "nota": `dijo "hola"`, "saldo": "12.50", "activo": true},
			map[string]any{"id": float64(3), "vehiculos": []any{map[string]any{"placa": "AB123CD"}}, "extra": nil},
		},
		{"texto suelto", float64(42), []any{"anidado"}},
	}
	for _, l := range lists {
		raw, err := Encode(l)
		require.NoError(t, err)

		got, err := Decode(raw)
		require.NoError(t, err)
		assert.Equal(t, l, got)
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, `{"a":"b"}`, Sanitize(`{\"a\":\"b\"}`))
	assert.Equal(t, `{"a":1,"b":2}`, Sanitize("{\"a\":1,\r\n\"b\":2}"))
	assert.Equal(t, `{"a":1,"b":2}`, Sanitize(`{"a":1,rn  "b":2}`))
	assert.Equal(t, `{"turno":"tarde"}`, Sanitize(`{"turno":"tarde"}`))

	once := Sanitize(`{\"status\":\"success\",rn \"body\":[]}`)
	assert.Equal(t, once, Sanitize(once))
}

func TestDecodeFirstMergesOverFallback(t *testing.T) {
	fallback := map[string]any{"id": float64(9), "referencia": "B-2", "clasificacion": "SOLVENTE"}
	raw := []byte(`{"data":[{"@res":"{\"status\":\"success\",\"body\":[{\"id\":9,\"referencia\":\"B-2\",\"clasificacion\":null,\"saldoActual\":\"10.00\"}]}"}]}`)

	got, err := DecodeFirst(raw, fallback)
	require.NoError(t, err)
	assert.Equal(t, "SOLVENTE", got["clasificacion"])
	assert.Equal(t, "10.00", got["saldoActual"])
	assert.Equal(t, "B-2", fallback["referencia"])
	_, tocado := fallback["saldoActual"]
	assert.False(t, tocado)
}

func TestDecodeFirstEmptyKeepsFallback(t *testing.T) {
	got, err := DecodeFirst([]byte(`{"data":[]}`), map[string]any{"id": float64(4)})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": float64(4)}, got)
}

func TestDecodePlain(t *testing.T) {
	p, err := DecodePlain([]byte(`{"response":"Proveedores","status":"success","body":[{"id":1}]}`))
	require.NoError(t, err)
	assert.True(t, p.Exitoso())
	assert.Len(t, p.Records(), 1)

	p, err = DecodePlain([]byte(`{"response":"sin datos","status":"success","body":""}`))
	require.NoError(t, err)
	assert.Empty(t, p.Records())

	p, err = DecodePlain([]byte(`{"data":[{"@res":"{\"status\":\"error\",\"response\":\"falló\"}"}]}`))
	require.NoError(t, err)
	assert.False(t, p.Exitoso())
	assert.Equal(t, "falló", p.Response)
}

func TestParseNestedJSONValidTextIsNotRewritten(t *testing.T) {
	v, err := ParseNestedJSON(`{"nota":"turn   on","cita":"dijo \"hola\""}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"nota": "turn   on", "cita": `dijo "hola"`}, v)
}
