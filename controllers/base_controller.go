package controllers

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/condominios-online/condominios_mid/helpers"
	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models/requestresponse"

	beego "github.com/beego/beego/v2/server/web"
)

// BaseController centraliza la construcción de respuestas estándar.
type BaseController struct {
	beego.Controller
}

// RespondSuccess envuelve un payload en el formato estándar.
func (c *BaseController) RespondSuccess(status int, message string, data interface{}) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = requestresponse.NewSuccess(status, message, data)
	_ = c.ServeJSON()
}

// RespondWarning responde 200 con Data vacío y el aviso en Message.
func (c *BaseController) RespondWarning(message string) {
	c.Ctx.Output.SetStatus(http.StatusOK)
	c.Data["json"] = requestresponse.NewWarning(http.StatusOK, message)
	_ = c.ServeJSON()
}

// RespondList responde una lista; con aviso la respuesta es de advertencia.
func (c *BaseController) RespondList(aviso string, data interface{}) {
	if aviso != "" {
		c.RespondWarning(aviso)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", data)
}

// RespondError transforma cualquier error en la respuesta estándar.
func (c *BaseController) RespondError(err error) {
	appErr := helpers.AsAppError(err, "error inesperado")
	c.Ctx.Output.SetStatus(appErr.Status)
	c.Data["json"] = requestresponse.NewError(appErr.Status, appErr.Message, nil)
	_ = c.ServeJSON()
}

// ParseJSONBody deserializa el cuerpo de la petición en dest.
func (c *BaseController) ParseJSONBody(out interface{}) error {
	raw := c.Ctx.Input.RequestBody

	if len(raw) == 0 && c.Ctx.Request != nil && c.Ctx.Request.Body != nil {
		b, err := io.ReadAll(c.Ctx.Request.Body)
		if err != nil {
			return err
		}
		raw = b

		// cache + reinyectar
		c.Ctx.Input.RequestBody = b
		c.Ctx.Request.Body = io.NopCloser(bytes.NewBuffer(b))
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return helpers.NewAppError(http.StatusBadRequest, "cuerpo vacío", nil)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return helpers.NewAppError(http.StatusBadRequest, "JSON inválido", err)
	}
	return nil
}

// BindAndValidate deserializa el cuerpo y aplica las reglas de validación del DTO.
// Si falla ya respondió al cliente y retorna false.
func (c *BaseController) BindAndValidate(out interface{}) bool {
	if err := c.ParseJSONBody(out); err != nil {
		c.RespondError(err)
		return false
	}
	if err := internalhelpers.ValidateStruct(out); err != nil {
		c.RespondError(err)
		return false
	}
	return true
}

// RequestContext retorna el contexto del request con su id de correlación.
func (c *BaseController) RequestContext() context.Context {
	return internalhelpers.RequestContext(c.Ctx)
}

// Session retorna la sesión que dejó el filtro de autenticación. Si no hay, responde 401.
func (c *BaseController) Session() (*session.Session, bool) {
	sess, err := internalhelpers.SessionFrom(c.Ctx)
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusUnauthorized, "sesión requerida", err))
		return nil, false
	}
	return sess, true
}

// ParamID lee el parámetro :id de la ruta. Si no es válido responde 400.
func (c *BaseController) ParamID() (int, bool) {
	id, err := internalhelpers.ParamInt(c.Ctx, ":id")
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", err))
		return 0, false
	}
	return id, true
}
