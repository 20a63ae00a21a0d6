package controllers

import (
	"net/http"
	"strings"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	"github.com/condominios-online/condominios_mid/helpers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// BancosController cuentas bancarias, estado de cuenta y movimientos directos.
type BancosController struct {
	rootcontrollers.BaseController
}

// GetAll lista las cuentas del condominio.
// @Summary Listar bancos
// @Tags Bancos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) GetAll() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	lista, err := internalservices.Bancos().Listar(c.RequestContext(), sess)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondList(lista.Aviso, lista.Items)
}

// Post registra una cuenta.
// @Summary Crear banco
// @Tags Bancos
// @Accept json
// @Produce json
// @Param body body internaldto.BancoRequest true "Cuenta"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) Post() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.BancoRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Bancos().Crear(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, msg, nil)
}

// Put actualiza una cuenta.
// @Summary Actualizar banco
// @Tags Bancos
// @Accept json
// @Produce json
// @Param id path int true "Id del banco"
// @Param body body internaldto.BancoRequest true "Cuenta"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) Put() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var req internaldto.BancoRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Bancos().Actualizar(c.RequestContext(), sess, id, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, msg, nil)
}

// GetEstadoCuenta movimientos de una cuenta con filtro y orden.
// @Summary Estado de cuenta de un banco
// @Description Filtra por texto en todas las columnas y ordena por la columna indicada. Por defecto fecha descendente.
// @Tags Bancos
// @Produce json
// @Param id path int true "Id del banco"
// @Param q query string false "Texto a buscar"
// @Param sort query string false "Columna: fecha, descripcion, referencia, debito, credito, saldo"
// @Param order query string false "asc o desc"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) GetEstadoCuenta() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	q := internaldto.EstadoCuentaQuery{
		Q:       strings.TrimSpace(c.GetString("q")),
		Columna: strings.ToLower(strings.TrimSpace(c.GetString("sort"))),
		Asc:     internalhelpers.QueryBool(c.Ctx, "order", false),
	}
	estado, aviso, err := internalservices.Bancos().EstadoCuenta(c.RequestContext(), sess, id, q)
	if err != nil {
		c.RespondError(err)
		return
	}
	if aviso != "" {
		c.RespondWarning(aviso)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", estado)
}

// GetFormatoImpresion HTML listo para imprimir de un movimiento.
// @Summary Formato de impresión de un movimiento
// @Tags Bancos
// @Produce html
// @Param id path string true "Id del movimiento"
// @Success 200 {string} string "HTML"
// @Failure 404 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) GetFormatoImpresion() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id := strings.TrimSpace(c.Ctx.Input.Param(":id"))
	if id == "" {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "id inválido", nil))
		return
	}
	html, err := internalservices.Bancos().FormatoImpresion(c.RequestContext(), sess, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.Ctx.Output.Header("Content-Type", "text/html; charset=utf-8")
	c.Ctx.Output.SetStatus(http.StatusOK)
	_ = c.Ctx.Output.Body([]byte(html))
}

// GetAuxiliares catálogo de bancos del sistema financiero.
// @Summary Listar bancos auxiliares
// @Tags Bancos
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
func (c *BancosController) GetAuxiliares() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	lista, err := internalservices.Bancos().Auxiliares(c.RequestContext(), sess)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondList(lista.Aviso, lista.Items)
}

// PostMovimiento débito o crédito directo.
// @Summary Registrar movimiento bancario
// @Description En efectivo (EFC) el banco es EFECTIVO y la referencia no aplica.
// @Tags Bancos
// @Accept json
// @Produce json
// @Param body body internaldto.MovimientoBancoRequest true "Movimiento"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *BancosController) PostMovimiento() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.MovimientoBancoRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Bancos().RegistrarMovimiento(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, msg, nil)
}
