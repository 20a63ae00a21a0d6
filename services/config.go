package services

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/condominios-online/condominios_mid/helpers"

	beego "github.com/beego/beego/v2/server/web"
)

const (
	defaultCondominiosBaseURL = "https://bknd.condominios-online.com"
	defaultTasasBaseURL       = "https://svg.iot-ve.online"
)

// Config centraliza la configuración necesaria para los servicios externos.
type Config struct {
	AppName            string
	HTTPPort           int
	RunMode            string
	CondominiosBaseURL string
	TasasBaseURL       string
	TasasAPIKey        string
	TasaOficial        string
	TasaCacheTTL       time.Duration
	RequestTimeout     time.Duration
	RetryCount         int
	RetryBackoffMs     int
	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	SessionTTL         time.Duration
	AllowOrigins       []string
}

var (
	cfg  Config
	once sync.Once
)

// GetConfig devuelve la configuración cargada desde variables de entorno o app.conf.
func GetConfig() Config {
	once.Do(func() {
		cfg = Config{
			AppName:            getString("APP_NAME", "appname", "condominios_mid"),
			HTTPPort:           getInt("HTTP_PORT", "httpport", 8080),
			RunMode:            getString("RUN_MODE", "runmode", "dev"),
			CondominiosBaseURL: normalizeBase(getString("CONDOMINIOS_BASE_URL", "condominios_base_url", defaultCondominiosBaseURL)),
			TasasBaseURL:       normalizeBase(getString("TASAS_BASE_URL", "tasas_base_url", defaultTasasBaseURL)),
			TasasAPIKey:        getString("TASAS_API_KEY", "tasas_api_key", ""),
			TasaOficial:        getString("TASA_OFICIAL", "tasa_oficial", ""),
			TasaCacheTTL:       time.Duration(getInt("TASA_CACHE_TTL_MIN", "tasa_cache_ttl_min", 60)) * time.Minute,
			RequestTimeout:     time.Duration(getInt("REQUEST_TIMEOUT_MS", "request_timeout_ms", 10000)) * time.Millisecond,
			RetryCount:         getInt("RETRY_COUNT", "retry_count", 2),
			RetryBackoffMs:     getInt("RETRY_BACKOFF_MS", "retry_backoff_ms", 300),
			RedisAddr:          getString("REDIS_ADDR", "redis_addr", ""),
			RedisPassword:      getString("REDIS_PASSWORD", "redis_password", ""),
			RedisDB:            getInt("REDIS_DB", "redis_db", 0),
			SessionTTL:         time.Duration(getInt("SESSION_TTL_MIN", "session_ttl_min", 480)) * time.Minute,
			AllowOrigins:       splitList(getString("ALLOW_ORIGINS", "allow_origins", "*")),
		}

		helpers.SetDefaultRetryCount(cfg.RetryCount)
		helpers.SetRetryBackoff(cfg.RetryBackoffMs)
	})
	return cfg
}

func getString(envKey, confKey, def string) string {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		return val
	}
	if val, err := beego.AppConfig.String(confKey); err == nil && strings.TrimSpace(val) != "" {
		return val
	}
	return def
}

func getInt(envKey, confKey string, def int) int {
	if val := strings.TrimSpace(os.Getenv(envKey)); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	if val, err := beego.AppConfig.Int(confKey); err == nil {
		return val
	}
	return def
}

func normalizeBase(value string) string {
	return strings.TrimSuffix(strings.TrimSpace(value), "/")
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// BuildURL compone una URL asegurando que no haya dobles slashes.
func BuildURL(base string, elems ...string) string {
	trimmed := strings.TrimSuffix(base, "/")
	for _, e := range elems {
		trimmed += "/" + strings.Trim(e, "/")
	}
	return trimmed
}
