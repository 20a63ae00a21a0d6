package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/beego/beego/v2/core/logs"
	"github.com/shopspring/decimal"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

const (
	recursoTransacciones = "transacciones"

	monedaBancoDefecto = "VES"
)

// TransaccionesService registra cobranzas, notas y operaciones bancarias. Todas van a
// POST /transacciones/ diferenciadas por clase.
type TransaccionesService struct {
	client *clients.CondominiosClient
	tasas  *TasasService
}

func NewTransaccionesService(client *clients.CondominiosClient, tasas *TasasService) *TransaccionesService {
	return &TransaccionesService{client: client, tasas: tasas}
}

// tasaAplicada es la tasa usada en una transacción y su equivalente en USD.
type tasaAplicada struct {
	fecha  string
	tasa   decimal.Decimal
	fuente string
	usd    decimal.Decimal
}

// RegistrarCobranza registra un cobro (COB). En efectivo no se exige banco de origen
// ni referencia.
func (s *TransaccionesService) RegistrarCobranza(ctx context.Context, sess *session.Session, in internaldto.CobranzaRequest) (internaldto.TransaccionResponse, error) {
	monto, err := montoPositivo(in.MontoBs, "montoBs")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	formaPago := strings.ToUpper(limpiar(in.FormaPago))
	bancoOrigen := limpiar(in.BancoOrigen)
	referencia := limpiar(in.ReferenciaCobro)
	if formaPago == models.FormaPagoEfectivo {
		bancoOrigen, referencia = "", ""
	} else if bancoOrigen == "" || referencia == "" {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest,
			"El banco de origen y la referencia son obligatorios salvo en efectivo", nil)
	}

	t, err := s.resolverTasa(ctx, in.Tasa, in.FechaTasa, in.FechaCobro, monto, in.MontoUsdRef)
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	monedaBanco := limpiar(in.MonedaBanco)
	if monedaBanco == "" {
		monedaBanco = monedaBancoDefecto
	}

	payload := models.Cobranza{
		IDEntidad:          in.IDEntidad.Int(),
		Clase:              models.ClaseCobranza,
		FormaPago:          formaPago,
		ReferenciaCobro:    referencia,
		BancoOrigen:        bancoOrigen,
		BancoDestino:       limpiar(in.BancoDestino),
		MontoBs:            monto.InexactFloat64(),
		MontoUsdRef:        t.usd.InexactFloat64(),
		Moneda:             models.MonedaBs,
		MonedaBanco:        monedaBanco,
		Tasa:               t.tasa.InexactFloat64(),
		FechaTasa:          t.fecha,
		FechaCobro:         fechaISO(in.FechaCobro),
		ObservacionesCobro: limpiar(in.ObservacionesCobro),
		IDUsuario:          sess.Usuario(),
	}
	msg, err := s.registrar(ctx, sess, payload, "Cobranza registrada correctamente")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	return respuestaTransaccion(msg, models.ClaseCobranza, monto, t), nil
}

// RegistrarNota registra una nota de débito (NDE) o crédito (NCE) sobre una entidad.
func (s *TransaccionesService) RegistrarNota(ctx context.Context, sess *session.Session, in internaldto.NotaRequest) (internaldto.TransaccionResponse, error) {
	clase := strings.ToUpper(limpiar(in.Clase))
	if clase != models.ClaseNotaDebito && clase != models.ClaseNotaCredito {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest, "clase de nota inválida", nil)
	}
	if limpiar(in.Concepto) == "" {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest, "El concepto es obligatorio", nil)
	}
	monto, err := montoPositivo(in.MontoBs, "montoBs")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	t, err := s.resolverTasa(ctx, in.Tasa, in.FechaTasa, in.FechaCobro, monto, in.MontoUsdRef)
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}

	payload := models.Nota{
		IDEntidad:          in.IDEntidad.Int(),
		Clase:              clase,
		Concepto:           limpiar(in.Concepto),
		FechaCobro:         fechaISO(in.FechaCobro),
		FechaTasa:          t.fecha,
		Tasa:               t.tasa.InexactFloat64(),
		MontoCobroBs:       monto.InexactFloat64(),
		MontoUsdRef:        t.usd.InexactFloat64(),
		ObservacionesCobro: limpiar(in.ObservacionesCobro),
		Moneda:             models.MonedaBs,
		IDUsuario:          sess.Usuario(),
		FormaPago:          models.FormaPagoNoAplica,
	}
	msg, err := s.registrar(ctx, sess, payload, "Nota registrada correctamente")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	return respuestaTransaccion(msg, clase, monto, t), nil
}

// RegistrarOperacion registra un débito (DB) o crédito (CR) sobre una cuenta.
func (s *TransaccionesService) RegistrarOperacion(ctx context.Context, sess *session.Session, in internaldto.OperacionRequest) (internaldto.TransaccionResponse, error) {
	clase := strings.ToUpper(limpiar(in.Clase))
	if clase != models.ClaseDebitoBanco && clase != models.ClaseCreditoBanco {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest, "clase de operación inválida", nil)
	}
	if limpiar(in.Concepto) == "" {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest, "El concepto es obligatorio", nil)
	}
	if in.BancoDestino.Int() <= 0 {
		return internaldto.TransaccionResponse{}, helpers.NewAppError(http.StatusBadRequest, "La cuenta es obligatoria", nil)
	}
	monto, err := montoPositivo(in.MontoBs, "montoBs")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	t, err := s.resolverTasa(ctx, in.Tasa, in.FechaTasa, in.FechaCobro, monto, in.MontoUsdRef)
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	formaPago := strings.ToUpper(limpiar(in.FormaPago))
	if formaPago == "" {
		formaPago = models.FormaPagoNoAplica
	}

	payload := models.Operacion{
		Clase:           clase,
		Concepto:        limpiar(in.Concepto),
		FechaCobro:      fechaISO(in.FechaCobro),
		FechaTasa:       t.fecha,
		Tasa:            t.tasa.InexactFloat64(),
		MontoCobroBs:    monto.InexactFloat64(),
		MontoUsdRef:     t.usd.InexactFloat64(),
		BancoOrigen:     limpiar(in.BancoOrigen),
		BancoDestino:    in.BancoDestino.Int(),
		NroCuenta:       limpiar(in.NroCuenta),
		ReferenciaCobro: limpiar(in.ReferenciaCobro),
		Moneda:          models.MonedaBs,
		IDUsuario:       sess.Usuario(),
		FormaPago:       formaPago,
	}
	msg, err := s.registrar(ctx, sess, payload, "Operación registrada correctamente")
	if err != nil {
		return internaldto.TransaccionResponse{}, err
	}
	return respuestaTransaccion(msg, clase, monto, t), nil
}

func (s *TransaccionesService) registrar(ctx context.Context, sess *session.Session, payload any, exito string) (string, error) {
	raw, err := s.client.RegistrarTransaccion(ctx, sess, payload)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al registrar la transacción")
	}
	return resultadoEscritura(recursoTransacciones, raw, exito, "Error al registrar la transacción")
}

// resolverTasa usa la tasa escrita por el usuario o consulta la de fechaTasa (o, sin
// ella, la de fechaRef). Sin tasa disponible la transacción se registra con tasa 0.
func (s *TransaccionesService) resolverTasa(ctx context.Context, tasa internaldto.Monto, fechaTasa, fechaRef string, monto decimal.Decimal, usd internaldto.Monto) (tasaAplicada, error) {
	out := tasaAplicada{fecha: fechaISO(fechaTasa)}
	if out.fecha == "" {
		out.fecha = fechaISO(fechaRef)
	}

	if !tasa.Vacio() {
		d, err := normalize.ParseMontoFormulario(string(tasa))
		if err != nil || !d.IsPositive() {
			return tasaAplicada{}, helpers.NewAppError(http.StatusBadRequest, "Tasa inválida", err)
		}
		out.tasa, out.fuente = d, "formulario"
	} else if s.tasas != nil && out.fecha != "" {
		res, err := s.tasas.Dolar(ctx, out.fecha)
		var appErr *helpers.AppError
		switch {
		case err == nil:
			out.tasa, out.fuente = res.Tasa, res.Fuente
		case errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest:
			return tasaAplicada{}, appErr
		default:
			logs.Warn("transacción sin tasa para %s: %v", out.fecha, err)
		}
	}

	if !usd.Vacio() {
		d, err := normalize.ParseMontoFormulario(string(usd))
		if err != nil || d.IsNegative() {
			return tasaAplicada{}, helpers.NewAppError(http.StatusBadRequest, "Monto de referencia en USD inválido", err)
		}
		out.usd = d.Round(2)
	} else if eq, ok := Equivalencia(monto, out.tasa); ok {
		out.usd = eq
	}
	return out, nil
}

// montoPositivo interpreta un monto del formulario y exige que sea mayor que cero.
func montoPositivo(m internaldto.Monto, campo string) (decimal.Decimal, error) {
	if m.Vacio() {
		return decimal.Zero, helpers.NewAppError(http.StatusBadRequest, fmt.Sprintf("el campo %s es obligatorio", campo), nil)
	}
	d, err := normalize.ParseMontoFormulario(string(m))
	if err != nil {
		return decimal.Zero, helpers.NewAppError(http.StatusBadRequest, fmt.Sprintf("el campo %s no es un monto válido", campo), err)
	}
	if !d.IsPositive() {
		return decimal.Zero, helpers.NewAppError(http.StatusBadRequest, fmt.Sprintf("el campo %s debe ser mayor que cero", campo), nil)
	}
	return d.Round(2), nil
}

func respuestaTransaccion(msg, clase string, monto decimal.Decimal, t tasaAplicada) internaldto.TransaccionResponse {
	return internaldto.TransaccionResponse{
		Mensaje:     msg,
		Clase:       clase,
		Tasa:        t.tasa.InexactFloat64(),
		FuenteTasa:  t.fuente,
		MontoBs:     monto.InexactFloat64(),
		MontoUsdRef: t.usd.InexactFloat64(),
	}
}
