package normalize

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/models"
)

// Movimiento normaliza una línea de estado de cuenta. Acepta las dos variantes de claves
// que usa el backend: debito/credito (bancos) y debitos/creditos (entidades).
func Movimiento(item map[string]any, index int) models.Movimiento {
	m := models.Movimiento{
		ID:         orDefault(item["id"], strconv.Itoa(index+1)),
		Fecha:      toString(primero(item, "fecha", "fechaCobro", "fechaMovimiento")),
		Tipo:       toString(primero(item, "tipo", "clase")),
		Referencia: toString(primero(item, "referencia", "referenciaCobro")),
		Concepto:   toString(primero(item, "concepto", "comentario", "observacionesCobro")),
		Debito:     ParseMonto(primero(item, "debito", "debitos", "montoDebito")),
		Credito:    ParseMonto(primero(item, "credito", "creditos", "montoCredito")),
		Saldo:      ParseMonto(primero(item, "saldo", "saldoActual")),
	}
	m.Display = models.MovimientoDisplay{
		Debito:  montoVisible(m.Debito),
		Credito: montoVisible(m.Credito),
		Saldo:   FormatMonto(m.Saldo),
	}
	return m
}

// montoVisible deja en blanco los débitos y créditos en cero.
func montoVisible(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return FormatMonto(d)
}

// Movimientos normaliza una lista completa.
func Movimientos(items []map[string]any) []models.Movimiento {
	out := make([]models.Movimiento, 0, len(items))
	for i, item := range items {
		out = append(out, Movimiento(item, i))
	}
	return out
}

func primero(item map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := item[k]; ok && v != nil && toString(v) != "" {
			return v
		}
	}
	return nil
}
