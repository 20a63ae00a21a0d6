package services

import (
	"context"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/redis/go-redis/v9"

	"github.com/condominios-online/condominios_mid/internal/clients"
	"github.com/condominios-online/condominios_mid/internal/metrics"
	"github.com/condominios-online/condominios_mid/internal/session"
	rootservices "github.com/condominios-online/condominios_mid/services"
)

var (
	registryOnce sync.Once

	sessionStore session.Store
	authSvc      *AuthService
	entidadesSvc *EntidadesService
	bancosSvc    *BancosService
	proveedorSvc *ProveedoresService
	transSvc     *TransaccionesService
	tasasSvc     *TasasService
)

func initRegistry() {
	registryOnce.Do(func() {
		cfg := rootservices.GetConfig()

		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
				DB:       cfg.RedisDB,
			})
			sessionStore = session.NewRedisStore(rdb, cfg.SessionTTL)
			logs.Info("sesiones en redis %s", cfg.RedisAddr)
		} else {
			mem := session.NewMemoryStore(cfg.SessionTTL)
			mem.OnExpire(func(n int) { metrics.SesionesActivas.Sub(float64(n)) })
			sessionStore = mem
			logs.Info("sesiones en memoria")
		}

		backend := clients.Condominios()
		backend.OnUnauthorized(CerrarSesionHook(sessionStore))

		tasasSvc = NewTasasService(clients.Tasas(), cfg.TasaOficial, cfg.TasaCacheTTL)
		authSvc = NewAuthService(backend, sessionStore)
		entidadesSvc = NewEntidadesService(backend)
		bancosSvc = NewBancosService(backend)
		proveedorSvc = NewProveedoresService(backend)
		transSvc = NewTransaccionesService(backend, tasasSvc)
	})
}

// CerrarSesionHook destruye la sesión cuando el backend responde 401.
func CerrarSesionHook(store session.Store) func(ctx context.Context, sess *session.Session) {
	return func(ctx context.Context, sess *session.Session) {
		if sess == nil || sess.ID == "" {
			return
		}
		// El request original puede estar cancelado; el borrado no depende de él.
		delCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
		defer cancel()
		borrada, err := store.Delete(delCtx, sess.Token)
		if err != nil {
			logs.Error("no se pudo cerrar la sesión %s: %v", sess.ID, err)
			return
		}
		if borrada {
			metrics.SesionesActivas.Dec()
		}
	}
}

// Sesiones retorna el almacén de sesiones configurado.
func Sesiones() session.Store {
	initRegistry()
	return sessionStore
}

func Auth() *AuthService {
	initRegistry()
	return authSvc
}

func Entidades() *EntidadesService {
	initRegistry()
	return entidadesSvc
}

func Bancos() *BancosService {
	initRegistry()
	return bancosSvc
}

func Proveedores() *ProveedoresService {
	initRegistry()
	return proveedorSvc
}

func Transacciones() *TransaccionesService {
	initRegistry()
	return transSvc
}

func Tasas() *TasasService {
	initRegistry()
	return tasasSvc
}
