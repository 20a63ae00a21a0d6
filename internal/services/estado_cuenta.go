package services

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/models"
)

// Columnas ordenables del estado de cuenta.
const (
	ColumnaFecha      = "fecha"
	ColumnaTipo       = "tipo"
	ColumnaReferencia = "referencia"
	ColumnaConcepto   = "concepto"
	ColumnaDebito     = "debito"
	ColumnaCredito    = "credito"
	ColumnaSaldo      = "saldo"
)

var formatosFecha = []string{
	"02/01/2006",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Filtrar conserva las líneas en las que q aparece, sin distinguir mayúsculas, en
// cualquiera de sus campos. q vacío retorna todas.
func Filtrar(lines []models.Movimiento, q string) []models.Movimiento {
	q = strings.ToLower(strings.TrimSpace(q))
	out := make([]models.Movimiento, 0, len(lines))
	for _, l := range lines {
		if q == "" || coincide(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func coincide(l models.Movimiento, q string) bool {
	campos := []string{
		l.ID, l.Fecha, l.Tipo, l.Referencia, l.Concepto,
		l.Debito.String(), l.Credito.String(), l.Saldo.String(),
		l.Display.Debito, l.Display.Credito, l.Display.Saldo,
	}
	for _, c := range campos {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}

// Ordenar retorna una copia ordenada por columna. Una columna desconocida deja el
// orden original.
func Ordenar(lines []models.Movimiento, columna string, asc bool) []models.Movimiento {
	out := append([]models.Movimiento(nil), lines...)
	cmp := comparador(strings.ToLower(strings.TrimSpace(columna)))
	if cmp == nil {
		return out
	}
	sort.SliceStable(out, func(i, j int) bool {
		if asc {
			return cmp(out[i], out[j]) < 0
		}
		return cmp(out[j], out[i]) < 0
	})
	return out
}

func comparador(columna string) func(a, b models.Movimiento) int {
	switch columna {
	case ColumnaFecha:
		return func(a, b models.Movimiento) int { return compararFechas(a.Fecha, b.Fecha) }
	case ColumnaTipo:
		return func(a, b models.Movimiento) int { return compararTexto(a.Tipo, b.Tipo) }
	case ColumnaReferencia:
		return func(a, b models.Movimiento) int { return compararTexto(a.Referencia, b.Referencia) }
	case ColumnaConcepto:
		return func(a, b models.Movimiento) int { return compararTexto(a.Concepto, b.Concepto) }
	case ColumnaDebito, "debitos":
		return func(a, b models.Movimiento) int { return a.Debito.Cmp(b.Debito) }
	case ColumnaCredito, "creditos":
		return func(a, b models.Movimiento) int { return a.Credito.Cmp(b.Credito) }
	case ColumnaSaldo:
		return func(a, b models.Movimiento) int { return a.Saldo.Cmp(b.Saldo) }
	}
	return nil
}

func compararTexto(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compararFechas ordena por fecha real; las fechas ilegibles quedan antes que las válidas.
func compararFechas(a, b string) int {
	ta, okA := parseFecha(a)
	tb, okB := parseFecha(b)
	switch {
	case okA && okB:
		return ta.Compare(tb)
	case okA:
		return 1
	case okB:
		return -1
	}
	return compararTexto(a, b)
}

func parseFecha(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range formatosFecha {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ResumenEstadoCuenta arma el estado de cuenta con totales sobre las líneas dadas.
func ResumenEstadoCuenta(lines []models.Movimiento) models.EstadoCuenta {
	debito, credito := decimal.Zero, decimal.Zero
	for _, l := range lines {
		debito = debito.Add(l.Debito)
		credito = credito.Add(l.Credito)
	}
	if lines == nil {
		lines = []models.Movimiento{}
	}
	return models.EstadoCuenta{
		Movimientos:  lines,
		Total:        len(lines),
		TotalDebito:  debito,
		TotalCredito: credito,
	}
}
