package controllers

import (
	"net/http"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// EntidadesController CRUD de inmuebles (entidades) del condominio.
type EntidadesController struct {
	rootcontrollers.BaseController
}

// GetAll lista las entidades del condominio de la sesión.
// @Summary Listar entidades
// @Description Si el contenido anidado del backend no se puede interpretar responde Success=true con Data vacío y el aviso en Message.
// @Tags Entidades
// @Produce json
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 401 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *EntidadesController) GetAll() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	lista, err := internalservices.Entidades().Listar(c.RequestContext(), sess)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondList(lista.Aviso, lista.Items)
}

// GetByID detalle de una entidad.
// @Summary Consultar entidad
// @Tags Entidades
// @Produce json
// @Param id path int true "Id de la entidad"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 404 {object} internaldto.APIResponseDTO
func (c *EntidadesController) GetByID() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	entidad, aviso, err := internalservices.Entidades().Obtener(c.RequestContext(), sess, id, nil)
	if err != nil {
		c.RespondError(err)
		return
	}
	if aviso != "" {
		c.RespondWarning(aviso)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", entidad)
}

// Post registra una entidad.
// @Summary Crear entidad
// @Description Reglas: una entidad ALQUILADA exige nombre y teléfono del inquilino; el representante INQUILINO solo aplica si está ALQUILADA.
// @Tags Entidades
// @Accept json
// @Produce json
// @Param body body internaldto.EntidadRequest true "Entidad"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *EntidadesController) Post() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.EntidadRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Entidades().Crear(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, msg, nil)
}

// Put actualiza una entidad.
// @Summary Actualizar entidad
// @Tags Entidades
// @Accept json
// @Produce json
// @Param id path int true "Id de la entidad"
// @Param body body internaldto.EntidadRequest true "Entidad"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *EntidadesController) Put() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var req internaldto.EntidadRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Entidades().Actualizar(c.RequestContext(), sess, id, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, msg, nil)
}

// Delete elimina una entidad con su motivo.
// @Summary Eliminar entidad
// @Tags Entidades
// @Accept json
// @Produce json
// @Param id path int true "Id de la entidad"
// @Param body body internaldto.EliminarRequest true "Motivo de la eliminación"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *EntidadesController) Delete() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var req internaldto.EliminarRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Entidades().Eliminar(c.RequestContext(), sess, id, req.MotivoEliminacion)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, msg, nil)
}
