package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var noNumerico = regexp.MustCompile(`[^0-9.\-]`)

var impresora = message.NewPrinter(language.German)

// ParseMonto interpreta un monto de estado de cuenta descartando todo lo que no sea
// dígito, punto o signo. Un valor ilegible vale cero.
func ParseMonto(value any) decimal.Decimal {
	switch v := value.(type) {
	case nil:
		return decimal.Zero
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case decimal.Decimal:
		return v
	}
	limpio := noNumerico.ReplaceAllString(toString(value), "")
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ParseMontoFormulario interpreta montos escritos por el usuario. Si trae coma se asume
// el formato visual "1.234,56"; si no, el punto es el separador decimal.
func ParseMontoFormulario(s string) (decimal.Decimal, error) {
	limpio := strings.TrimSpace(s)
	limpio = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(limpio, "Bs."), "Bs"))
	limpio = strings.ReplaceAll(limpio, " ", "")
	if limpio == "" {
		return decimal.Zero, fmt.Errorf("monto vacío")
	}
	if strings.Contains(limpio, ",") {
		limpio = strings.ReplaceAll(limpio, ".", "")
		limpio = strings.ReplaceAll(limpio, ",", ".")
	}
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero, fmt.Errorf("monto inválido %q", s)
	}
	return d, nil
}

// ParseTasa interpreta la tasa del servicio de cambio, que usa coma decimal ("36,54").
func ParseTasa(s string) (decimal.Decimal, error) {
	limpio := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(limpio)
	if err != nil {
		return decimal.Zero, fmt.Errorf("tasa inválida %q", s)
	}
	return d, nil
}

// FormatMonto presenta un monto con dos decimales y formato de-DE.
func FormatMonto(d decimal.Decimal) string {
	return impresora.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}
