package dto

import (
	"bytes"
	"strings"

	"github.com/goccy/go-json"

	"github.com/condominios-online/condominios_mid/models/requestresponse"
)

// APIResponseDTO reutiliza el DTO estándar expuesto por requestresponse.
type APIResponseDTO = requestresponse.APIResponseDTO

// PageDTO representa una colección paginada.
type PageDTO[T any] struct {
	Items []T `json:"items"`
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

// Monto es un monto tal como lo escribe el usuario. Acepta número o texto
// ("1.234,56", "250.75") y se interpreta en el servicio.
type Monto string

// UnmarshalJSON acepta número, texto o null.
func (m *Monto) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*m = ""
		return nil
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*m = Monto(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return err
	}
	*m = Monto(n.String())
	return nil
}

// Vacio indica que el usuario no escribió el monto.
func (m Monto) Vacio() bool {
	return strings.TrimSpace(string(m)) == ""
}

// EliminarRequest confirma una eliminación con su motivo.
type EliminarRequest struct {
	MotivoEliminacion string `json:"motivoEliminacion" validate:"required"`
}
