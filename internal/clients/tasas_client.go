package clients

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	rootservices "github.com/condominios-online/condominios_mid/services"
)

// FormatoFecha es el formato de fecha que espera el servicio de tasas.
const FormatoFecha = "2006-01-02"

// TasasClient consulta el servicio externo de tasas de cambio.
type TasasClient struct {
	baseURL string
	apiKey  string
	timeout time.Duration
}

type respuestaDolar struct {
	Dolar any `json:"dolar"`
}

var (
	tasasClient     *TasasClient
	tasasClientOnce sync.Once
)

// NewTasasClient construye el cliente; apiKey viaja en el header x-api-key.
func NewTasasClient(baseURL, apiKey string, timeout time.Duration) *TasasClient {
	return &TasasClient{baseURL: strings.TrimSuffix(baseURL, "/"), apiKey: apiKey, timeout: timeout}
}

// Tasas retorna el cliente singleton configurado desde GetConfig.
func Tasas() *TasasClient {
	tasasClientOnce.Do(func() {
		cfg := rootservices.GetConfig()
		tasasClient = NewTasasClient(cfg.TasasBaseURL, cfg.TasasAPIKey, cfg.RequestTimeout)
	})
	return tasasClient
}

// Dolar obtiene la tasa Bs/USD de la fecha (YYYY-MM-DD).
func (c *TasasClient) Dolar(ctx context.Context, fecha string) (decimal.Decimal, error) {
	if err := ctxErr(ctx); err != nil {
		return decimal.Zero, err
	}
	if _, err := time.Parse(FormatoFecha, fecha); err != nil {
		return decimal.Zero, helpers.NewAppError(http.StatusBadRequest, "fecha inválida, use AAAA-MM-DD", err)
	}

	headers := rootservices.AddTasasKey(map[string]string{"X-Request-Id": RequestID(ctx)}, c.apiKey)
	var out respuestaDolar
	err := helpers.DoJSON(ctx, helpers.Request{
		Upstream: "tasas",
		Method:   http.MethodGet,
		URL:      rootservices.BuildURL(c.baseURL, "rateExchange", "date", fecha, "dolar"),
		Headers:  headers,
		Timeout:  c.timeout,
	}, &out)
	if err != nil {
		return decimal.Zero, err
	}
	var texto string
	switch v := out.Dolar.(type) {
	case string:
		texto = v
	case float64:
		return decimal.NewFromFloat(v), nil
	default:
		return decimal.Zero, fmt.Errorf("respuesta de tasas sin campo dolar")
	}
	tasa, err := normalize.ParseTasa(texto)
	if err != nil {
		return decimal.Zero, err
	}
	if !tasa.IsPositive() {
		return decimal.Zero, fmt.Errorf("tasa no positiva %s", tasa)
	}
	return tasa, nil
}
