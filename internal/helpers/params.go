package helpers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beego/beego/v2/server/web/context"
)

// ParamInt extrae un parámetro de ruta como entero positivo.
func ParamInt(ctx *context.Context, name string) (int, error) {
	if ctx == nil {
		return 0, fmt.Errorf("contexto nil")
	}
	raw := strings.TrimSpace(ctx.Input.Param(name))
	if raw == "" {
		return 0, fmt.Errorf("parametro %s vacío", name)
	}
	val, err := strconv.Atoi(raw)
	if err != nil || val <= 0 {
		return 0, fmt.Errorf("parametro %s inválido", name)
	}
	return val, nil
}

// QueryBool interpreta un parámetro de consulta booleano; vacío retorna def.
func QueryBool(ctx *context.Context, name string, def bool) bool {
	raw := strings.ToLower(strings.TrimSpace(ctx.Input.Query(name)))
	switch raw {
	case "":
		return def
	case "1", "true", "si", "asc":
		return true
	default:
		return false
	}
}
