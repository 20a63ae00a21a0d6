package controllers

import (
	"net/http"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	"github.com/condominios-online/condominios_mid/helpers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// AuthController maneja el login en dos fases y el cierre de sesión.
type AuthController struct {
	rootcontrollers.BaseController
}

// Login primera fase: credenciales contra el backend.
// @Summary Iniciar sesión
// @Description Valida login y pwd. Retorna el selectionToken, el usuario y los condominios (clientes) disponibles.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body internaldto.LoginRequest true "Credenciales"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *AuthController) Login() {
	var req internaldto.LoginRequest
	if !c.BindAndValidate(&req) {
		return
	}

	res, err := internalservices.Auth().Login(c.RequestContext(), req)
	if err != nil {
		c.respondError(err, "error iniciando sesión")
		return
	}
	resp := internalhelpers.Ok(res)
	c.writeJSON(resp.Status, resp)
}

// SelectClient segunda fase: cambia el selectionToken por el token final y abre la sesión.
// @Summary Seleccionar condominio
// @Description Abre la sesión del usuario para el condominio elegido. El token retornado se envía como Bearer en el resto de rutas.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body internaldto.SelectClientRequest true "Selección"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *AuthController) SelectClient() {
	var req internaldto.SelectClientRequest
	if !c.BindAndValidate(&req) {
		return
	}

	sess, err := internalservices.Auth().SelectClient(c.RequestContext(), req)
	if err != nil {
		c.respondError(err, "error seleccionando condominio")
		return
	}

	out := internaldto.SesionResponse{
		Token:         sess.Token,
		UserID:        sess.UserID,
		NombreUsuario: sess.NombreUsuario,
		ClienteID:     sess.ClienteID,
	}
	if !sess.ExpiraEn.IsZero() {
		exp := sess.ExpiraEn
		out.ExpiraEn = &exp
	}
	resp := internalhelpers.Ok(out)
	c.writeJSON(resp.Status, resp)
}

// Logout cierra la sesión actual.
// @Summary Cerrar sesión
// @Tags Auth
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
func (c *AuthController) Logout() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	if err := internalservices.Auth().Logout(c.RequestContext(), sess); err != nil {
		c.respondError(err, "error cerrando sesión")
		return
	}
	c.RespondSuccess(http.StatusOK, "sesión cerrada", nil)
}

func (c *AuthController) respondError(err error, fallback string) {
	appErr := helpers.AsAppError(err, fallback)
	resp := internalhelpers.Fail(appErr.Status, appErr.Message)
	c.writeJSON(resp.Status, resp)
}

func (c *AuthController) writeJSON(status int, payload internaldto.APIResponseDTO) {
	c.Ctx.Output.SetStatus(status)
	c.Data["json"] = payload
	_ = c.ServeJSON()
}
