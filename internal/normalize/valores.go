package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case json.Number:
		if parsed, err := strconv.Atoi(v.String()); err == nil {
			return parsed, true
		}
	case string:
		if strings.TrimSpace(v) == "" {
			return 0, false
		}
		if parsed, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func toBool(value any, def bool) bool {
	switch v := value.(type) {
	case bool:
		return v
	case string:
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			lower := strings.ToLower(trimmed)
			return lower == "true" || lower == "1" || lower == "si" || lower == "activo"
		}
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return def
}

func toString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// orDefault retorna def cuando el valor es nulo o texto vacío.
func orDefault(value any, def string) string {
	if s := toString(value); s != "" {
		return s
	}
	return def
}

func asMap(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

func asStrings(value any) []string {
	list, ok := value.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		if s := strings.TrimSpace(toString(item)); s != "" {
			out = append(out, s)
		}
	}
	return out
}
