package controllers

import (
	"net/http"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// TransaccionesController cobranzas, notas y operaciones bancarias.
type TransaccionesController struct {
	rootcontrollers.BaseController
}

// PostCobranza registra un cobro a una entidad.
// @Summary Registrar cobranza
// @Description Sin tasa en el formulario se consulta la del día de fechaTasa (o fechaCobro). En efectivo (EFC) no aplican banco de origen ni referencia.
// @Tags Transacciones
// @Accept json
// @Produce json
// @Param body body internaldto.CobranzaRequest true "Cobranza"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *TransaccionesController) PostCobranza() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.CobranzaRequest
	if !c.BindAndValidate(&req) {
		return
	}
	out, err := internalservices.Transacciones().RegistrarCobranza(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, out.Mensaje, out)
}

// PostNota registra una nota de débito (NDE) o crédito (NCE) a una entidad.
// @Summary Registrar nota
// @Tags Transacciones
// @Accept json
// @Produce json
// @Param body body internaldto.NotaRequest true "Nota"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *TransaccionesController) PostNota() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.NotaRequest
	if !c.BindAndValidate(&req) {
		return
	}
	out, err := internalservices.Transacciones().RegistrarNota(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, out.Mensaje, out)
}

// PostOperacion registra un débito (DB) o crédito (CR) bancario.
// @Summary Registrar operación bancaria
// @Tags Transacciones
// @Accept json
// @Produce json
// @Param body body internaldto.OperacionRequest true "Operación"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *TransaccionesController) PostOperacion() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.OperacionRequest
	if !c.BindAndValidate(&req) {
		return
	}
	out, err := internalservices.Transacciones().RegistrarOperacion(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, out.Mensaje, out)
}
