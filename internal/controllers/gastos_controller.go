package controllers

import (
	"net/http"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// GastosController cálculo de la distribución de gastos del período.
type GastosController struct {
	rootcontrollers.BaseController
}

// PostDistribucion suma gastos y calcula la cuota por inmueble.
// @Summary Distribuir gastos
// @Description No llama al backend. Ejemplo: {"ordinarios":[{"concepto":"Vigilancia","monto":"1200.00"}],"extraordinarios":[],"nroInmuebles":24}
// @Tags Gastos
// @Accept json
// @Produce json
// @Param body body internaldto.GastosRequest true "Gastos del período"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *GastosController) PostDistribucion() {
	var req internaldto.GastosRequest
	if !c.BindAndValidate(&req) {
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", internalservices.Distribuir(req.Ordinarios, req.Extraordinarios, req.NroInmuebles))
}
