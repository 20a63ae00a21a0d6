package controllers

import (
	"net/http"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// ProveedoresController CRUD de proveedores, paginado en el backend.
type ProveedoresController struct {
	rootcontrollers.BaseController
}

// GetAll lista una página de proveedores.
// @Summary Listar proveedores
// @Description Ejemplo de respuesta: {"Success":true,"Status":200,"Message":"OK","Data":{"items":[{"id":3,"razonSocial":"Ascensores CA","personalidad":"J"}],"page":1,"size":10,"total":1}}
// @Tags Proveedores
// @Produce json
// @Param page query int false "Página" Example(1)
// @Param limit query int false "Tamaño de página (máx 100)" Example(10)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *ProveedoresController) GetAll() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	page, limit := internalhelpers.ParsePageLimit(c.GetString("page"), c.GetString("limit"))
	data, aviso, err := internalservices.Proveedores().Listar(c.RequestContext(), sess, page, limit)
	if err != nil {
		c.RespondError(err)
		return
	}
	if aviso != "" {
		c.RespondSuccess(http.StatusOK, aviso, data)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", data)
}

// Post registra un proveedor.
// @Summary Crear proveedor
// @Tags Proveedores
// @Accept json
// @Produce json
// @Param body body internaldto.ProveedorRequest true "Proveedor"
// @Success 201 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *ProveedoresController) Post() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	var req internaldto.ProveedorRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Proveedores().Crear(c.RequestContext(), sess, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusCreated, msg, nil)
}

// Put actualiza un proveedor.
// @Summary Actualizar proveedor
// @Tags Proveedores
// @Accept json
// @Produce json
// @Param id path int true "Id del proveedor"
// @Param body body internaldto.ProveedorRequest true "Proveedor"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *ProveedoresController) Put() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	var req internaldto.ProveedorRequest
	if !c.BindAndValidate(&req) {
		return
	}
	msg, err := internalservices.Proveedores().Actualizar(c.RequestContext(), sess, id, req)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, msg, nil)
}

// Delete elimina un proveedor.
// @Summary Eliminar proveedor
// @Tags Proveedores
// @Produce json
// @Param id path int true "Id del proveedor"
// @Success 200 {object} internaldto.APIResponseDTO
func (c *ProveedoresController) Delete() {
	sess, ok := c.Session()
	if !ok {
		return
	}
	id, ok := c.ParamID()
	if !ok {
		return
	}
	msg, err := internalservices.Proveedores().Eliminar(c.RequestContext(), sess, id)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, msg, nil)
}
