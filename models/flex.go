package models

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// FlexInt permite deserializar valores que pueden venir como número, string o estructura {id: ...}.
type FlexInt int

// UnmarshalJSON soporta los formatos heterogéneos que envían el SPA y el backend.
func (fi *FlexInt) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*fi = 0
		return nil
	}
	switch trimmed[0] {
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &obj); err != nil {
			return err
		}
		if raw, ok := obj["id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		if raw, ok := obj["Id"]; ok && raw != nil {
			return fi.UnmarshalJSON(raw)
		}
		*fi = 0
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*fi = 0
			return nil
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		*fi = FlexInt(v)
		return nil
	default:
		var f float64
		if err := json.Unmarshal(trimmed, &f); err != nil {
			return err
		}
		*fi = FlexInt(int(f))
		return nil
	}
}

// MarshalJSON serializa el valor interno como entero.
func (fi FlexInt) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(fi))
}

// Int devuelve el valor entero nativo.
func (fi FlexInt) Int() int {
	return int(fi)
}
