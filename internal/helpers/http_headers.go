package helpers

import (
	stdctx "context"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/condominios-online/condominios_mid/internal/clients"
)

// RequestContext retorna el context.Context del request, con el id de correlación
// que viaja al backend como X-Request-Id.
func RequestContext(ctx *context.Context) stdctx.Context {
	base := stdctx.Background()
	if ctx == nil || ctx.Request == nil {
		return clients.WithRequestID(base, "")
	}
	base = ctx.Request.Context()
	return clients.WithRequestID(base, correlationID(ctx))
}

func correlationID(ctx *context.Context) string {
	if corr := strings.TrimSpace(ctx.Input.Header("X-Request-Id")); corr != "" {
		return corr
	}
	return strings.TrimSpace(ctx.Input.Header("X-Correlation-Id"))
}
