package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	"github.com/condominios-online/condominios_mid/internal/metrics"
	"github.com/condominios-online/condominios_mid/internal/normalize"
)

// Fuentes de una tasa resuelta.
const (
	FuenteAPI     = "api"
	FuenteCache   = "cache"
	FuenteOficial = "oficial"
)

// TasaResultado es la tasa Bs/USD de una fecha y de dónde salió.
type TasaResultado struct {
	Fecha  string          `json:"fecha"`
	Tasa   decimal.Decimal `json:"tasa"`
	Fuente string          `json:"fuente"`
}

type cacheEntry struct {
	value      decimal.Decimal
	expiration time.Time
}

// TasasService consulta tasas de cambio con caché en memoria. Si el servicio externo
// falla se usa la tasa oficial configurada, cuando existe.
type TasasService struct {
	client  *clients.TasasClient
	oficial decimal.Decimal
	ttl     time.Duration
	cache   sync.Map
	now     func() time.Time
}

func NewTasasService(client *clients.TasasClient, oficial string, ttl time.Duration) *TasasService {
	s := &TasasService{client: client, ttl: ttl, now: time.Now}
	if strings.TrimSpace(oficial) != "" {
		d, err := normalize.ParseTasa(oficial)
		if err != nil || !d.IsPositive() {
			logs.Warn("tasa oficial %q ignorada", oficial)
		} else {
			s.oficial = d
		}
	}
	return s
}

// Dolar retorna la tasa de la fecha (AAAA-MM-DD).
func (s *TasasService) Dolar(ctx context.Context, fecha string) (TasaResultado, error) {
	fecha = fechaISO(fecha)
	if v, ok := s.getFromCache(fecha); ok {
		metrics.TasaLookupsTotal.WithLabelValues(FuenteCache).Inc()
		return TasaResultado{Fecha: fecha, Tasa: v, Fuente: FuenteCache}, nil
	}

	tasa, err := s.client.Dolar(ctx, fecha)
	if err == nil {
		s.saveInCache(fecha, tasa)
		metrics.TasaLookupsTotal.WithLabelValues(FuenteAPI).Inc()
		return TasaResultado{Fecha: fecha, Tasa: tasa, Fuente: FuenteAPI}, nil
	}

	var appErr *helpers.AppError
	if errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest {
		return TasaResultado{}, appErr
	}
	if s.oficial.IsPositive() {
		logs.Warn("tasa %s no disponible, se usa la oficial: %v", fecha, err)
		metrics.TasaLookupsTotal.WithLabelValues(FuenteOficial).Inc()
		return TasaResultado{Fecha: fecha, Tasa: s.oficial, Fuente: FuenteOficial}, nil
	}
	metrics.TasaLookupsTotal.WithLabelValues("error").Inc()
	return TasaResultado{}, helpers.AsAppError(err, "No se pudo obtener la tasa del día")
}

func (s *TasasService) getFromCache(key string) (decimal.Decimal, bool) {
	raw, ok := s.cache.Load(key)
	if !ok {
		return decimal.Zero, false
	}
	entry := raw.(cacheEntry)
	if s.now().After(entry.expiration) {
		s.cache.Delete(key)
		return decimal.Zero, false
	}
	return entry.value, true
}

func (s *TasasService) saveInCache(key string, value decimal.Decimal) {
	if s.ttl <= 0 {
		return
	}
	s.cache.Store(key, cacheEntry{value: value, expiration: s.now().Add(s.ttl)})
}

// Equivalencia convierte Bs a USD con dos decimales. Si alguno de los valores no es
// positivo no hay equivalencia.
func Equivalencia(montoBs, tasa decimal.Decimal) (decimal.Decimal, bool) {
	if !montoBs.IsPositive() || !tasa.IsPositive() {
		return decimal.Zero, false
	}
	return montoBs.DivRound(tasa, 2), true
}
