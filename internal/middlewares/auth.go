package middlewares

import (
	"net/http"
	"strings"
	"sync"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"

	"github.com/condominios-online/condominios_mid/internal/clients"
	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

var (
	authOnce sync.Once

	// rutas que no requieren sesión
	publicPaths = map[string]bool{
		"/v1/auth/login":         true,
		"/v1/auth/select-client": true,
	}
)

// UseAuth registra el middleware de autenticación una sola vez.
func UseAuth() {
	authOnce.Do(func() {
		beego.InsertFilter("/v1/*", beego.BeforeRouter, authFilter)
	})
}

// AuthFilter expone el filtro para escenarios donde el registro manual sea preferido.
func AuthFilter(ctx *context.Context) {
	authFilter(ctx)
}

func authFilter(ctx *context.Context) {
	if ctx.Input.Method() == http.MethodOptions {
		return
	}
	path := strings.TrimSuffix(ctx.Input.URL(), "/")
	if publicPaths[path] {
		return
	}

	token, err := internalhelpers.BearerToken(ctx)
	if err != nil {
		reject(ctx, "sesión requerida")
		return
	}
	sess, err := internalservices.Auth().Sesion(internalhelpers.RequestContext(ctx), token)
	if err != nil {
		logs.Debug("token rechazado en %s: %v", path, err)
		reject(ctx, clients.MensajeSesionExpirada)
		return
	}
	internalhelpers.SetSession(ctx, sess)
}

func reject(ctx *context.Context, message string) {
	ctx.Output.SetStatus(http.StatusUnauthorized)
	_ = ctx.Output.JSON(internalhelpers.Fail(http.StatusUnauthorized, message), false, false)
}
