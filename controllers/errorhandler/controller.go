package errorhandler

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/condominios-online/condominios_mid/models/requestresponse"

	"github.com/beego/beego/v2/core/logs"
	beego "github.com/beego/beego/v2/server/web"
	"github.com/beego/beego/v2/server/web/context"
)

// ErrorHandlerController se registra en el router para gestionar 404 y otros fallos.
type ErrorHandlerController struct {
	beego.Controller
}

// Error404 centraliza la respuesta cuando la ruta no existe.
func (c *ErrorHandlerController) Error404() {
	method := c.Ctx.Request.Method
	path := c.Ctx.Request.URL.Path
	status := http.StatusNotFound
	message := fmt.Sprintf("nomatch|%s|%s", method, path)

	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, message, nil)
	_ = c.ServeJSON()
}

// Error502 se usa cuando el backend de condominios no respondió.
func (c *ErrorHandlerController) Error502() {
	status := http.StatusBadGateway
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewError(status, "servicio remoto no disponible", nil)
	_ = c.ServeJSON()
}

// HandlePanic captura pánicos en controladores y entrega una respuesta estándar.
// Se registra como beego.BConfig.RecoverFunc.
func HandlePanic(ctx *context.Context, _ *beego.Config) {
	r := recover()
	if r == nil {
		return
	}
	if r == beego.ErrAbort {
		return
	}
	logs.Error("panic:", r)
	debug.PrintStack()

	appName := beego.AppConfig.DefaultString("appname", "condominios_mid")
	message := fmt.Sprintf("Error service %s: An internal server error occurred.", appName)
	message += fmt.Sprintf(" Request Info: URL: %s, Method: %s", ctx.Request.URL, ctx.Request.Method)
	message += " Time: " + time.Now().UTC().Format(time.RFC3339)

	status := http.StatusInternalServerError
	ctx.Output.SetStatus(status)
	_ = ctx.Output.JSON(requestresponse.NewError(status, message, nil), false, false)
}
