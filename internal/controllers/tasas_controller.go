package controllers

import (
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	rootcontrollers "github.com/condominios-online/condominios_mid/controllers"
	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
)

// TasasController tasa Bs/USD y equivalencias.
type TasasController struct {
	rootcontrollers.BaseController
}

// equivalenciaResponse resultado de convertir un monto en Bs a USD.
type equivalenciaResponse struct {
	MontoBs  decimal.Decimal `json:"montoBs"`
	Tasa     decimal.Decimal `json:"tasa"`
	MontoUsd decimal.Decimal `json:"montoUsd"`
	Fuente   string          `json:"fuente"`
}

// GetDolar tasa del dólar de una fecha.
// @Summary Tasa del dólar
// @Description Usa caché; si el servicio externo falla responde con la tasa oficial configurada.
// @Tags Tasas
// @Produce json
// @Param fecha path string true "Fecha YYYY-MM-DD" Example(2024-03-01)
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
// @Failure 502 {object} internaldto.APIResponseDTO
func (c *TasasController) GetDolar() {
	fecha := strings.TrimSpace(c.Ctx.Input.Param(":fecha"))
	res, err := internalservices.Tasas().Dolar(c.RequestContext(), fecha)
	if err != nil {
		c.RespondError(err)
		return
	}
	c.RespondSuccess(http.StatusOK, "OK", res)
}

// GetEquivalencia convierte un monto en Bs a USD.
// @Summary Equivalencia en USD
// @Description Usa la tasa indicada o, si no viene, la del día de fecha.
// @Tags Tasas
// @Produce json
// @Param montoBs query string true "Monto en Bs" Example(1.234,56)
// @Param tasa query string false "Tasa Bs/USD"
// @Param fecha query string false "Fecha de la tasa YYYY-MM-DD"
// @Success 200 {object} internaldto.APIResponseDTO
// @Failure 400 {object} internaldto.APIResponseDTO
func (c *TasasController) GetEquivalencia() {
	monto, err := normalize.ParseMontoFormulario(c.GetString("montoBs"))
	if err != nil {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "montoBs inválido", err))
		return
	}

	out := equivalenciaResponse{MontoBs: monto, Fuente: "formulario"}
	if raw := strings.TrimSpace(c.GetString("tasa")); raw != "" {
		out.Tasa, err = normalize.ParseTasa(raw)
		if err != nil {
			c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tasa inválida", err))
			return
		}
	} else {
		fecha := strings.TrimSpace(c.GetString("fecha"))
		if fecha == "" {
			c.RespondError(helpers.NewAppError(http.StatusBadRequest, "tasa o fecha requerida", nil))
			return
		}
		res, err := internalservices.Tasas().Dolar(c.RequestContext(), fecha)
		if err != nil {
			c.RespondError(err)
			return
		}
		out.Tasa, out.Fuente = res.Tasa, res.Fuente
	}

	usd, ok := internalservices.Equivalencia(out.MontoBs, out.Tasa)
	if !ok {
		c.RespondError(helpers.NewAppError(http.StatusBadRequest, "monto y tasa deben ser mayores a cero", nil))
		return
	}
	out.MontoUsd = usd
	c.RespondSuccess(http.StatusOK, "OK", out)
}
