package services

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

const (
	recursoBancos       = "bancos"
	recursoEstadoCuenta = "bancos_estado_cuenta"
	recursoAuxiliares   = "bancos_auxiliares"

	estadoBancoActivo   = "activo"
	estadoBancoInactivo = "inactivo"

	claseMovimientoDebito  = "debito"
	claseMovimientoCredito = "credito"
)

// BancosService administra las cuentas de la comunidad y sus movimientos.
type BancosService struct {
	client *clients.CondominiosClient
}

func NewBancosService(client *clients.CondominiosClient) *BancosService {
	return &BancosService{client: client}
}

// Listar retorna las cuentas. Solo status success u ok se acepta como lista válida.
func (s *BancosService) Listar(ctx context.Context, sess *session.Session) (Lista[models.Banco], error) {
	raw, err := s.client.Bancos(ctx, sess)
	if err != nil {
		return Lista[models.Banco]{}, helpers.AsAppError(err, "Error al cargar los bancos")
	}

	p, err := envelope.DecodePlain(raw)
	if err != nil {
		return Lista[models.Banco]{Items: []models.Banco{}, Aviso: degradar(recursoBancos, err)}, nil
	}
	if p.Status != "" && !p.Exitoso() {
		msg := strings.TrimSpace(p.Response)
		if msg == "" {
			msg = "Error al cargar los bancos"
		}
		return Lista[models.Banco]{}, helpers.NewAppError(http.StatusBadGateway, msg, nil)
	}
	records, aviso := decodeRegistros(recursoBancos, raw)
	return Lista[models.Banco]{Items: normalize.Bancos(records), Aviso: aviso}, nil
}

func (s *BancosService) Crear(ctx context.Context, sess *session.Session, in internaldto.BancoRequest) (string, error) {
	raw, err := s.client.CrearBanco(ctx, sess, BuildBancoPayload(in))
	if err != nil {
		return "", helpers.AsAppError(err, "Error al crear el banco")
	}
	return resultadoEscritura(recursoBancos, raw, "Banco creado correctamente", "Error al crear el banco")
}

func (s *BancosService) Actualizar(ctx context.Context, sess *session.Session, id int, in internaldto.BancoRequest) (string, error) {
	raw, err := s.client.ActualizarBanco(ctx, sess, id, BuildBancoPayload(in))
	if err != nil {
		return "", helpers.AsAppError(err, "Error al actualizar el banco")
	}
	return resultadoEscritura(recursoBancos, raw, "Banco actualizado correctamente", "Error al actualizar el banco")
}

// BuildBancoPayload arma el cuerpo de alta/edición. La moneda por defecto es Bs.
func BuildBancoPayload(in internaldto.BancoRequest) models.BancoPayload {
	moneda := limpiar(in.Moneda)
	if moneda == "" {
		moneda = models.MonedaBs
	}
	pagoMovil := in.PagoMovil
	if pagoMovil == nil {
		pagoMovil = &models.PagoMovil{}
	}
	estado := estadoBancoActivo
	if in.Activo != nil && !*in.Activo {
		estado = estadoBancoInactivo
	}
	return models.BancoPayload{
		Tipo:   strings.ToUpper(limpiar(in.Tipo)),
		Nombre: limpiar(in.Nombre),
		Apodo:  limpiar(in.Apodo),
		Datos: models.DatosBanco{
			NumeroCuenta: limpiar(in.NumeroCuenta),
			Moneda:       moneda,
			PagoMovil:    pagoMovil,
		},
		EstadoActual: estado,
		Comentarios:  limpiar(in.Comentarios),
	}
}

// EstadoCuenta retorna las líneas de la cuenta filtradas y ordenadas. Sin columna
// explícita el orden es por fecha descendente.
func (s *BancosService) EstadoCuenta(ctx context.Context, sess *session.Session, id int, q internaldto.EstadoCuentaQuery) (models.EstadoCuenta, string, error) {
	raw, err := s.client.EstadoCuentaBanco(ctx, sess, id)
	if err != nil {
		return models.EstadoCuenta{}, "", helpers.AsAppError(err, "Error al cargar el estado de cuenta")
	}
	records, aviso := decodeRegistros(recursoEstadoCuenta, raw)

	columna, asc := q.Columna, q.Asc
	if strings.TrimSpace(columna) == "" {
		columna, asc = ColumnaFecha, false
	}
	lines := Ordenar(Filtrar(normalize.Movimientos(records), q.Q), columna, asc)
	return ResumenEstadoCuenta(lines), aviso, nil
}

// FormatoImpresion retorna el HTML imprimible de un movimiento. El backend puede
// responder {html: "..."}, un texto JSON o el HTML directo.
func (s *BancosService) FormatoImpresion(ctx context.Context, sess *session.Session, movimientoID string) (string, error) {
	movimientoID = limpiar(movimientoID)
	if movimientoID == "" {
		return "", helpers.NewAppError(http.StatusBadRequest, "movimiento inválido", nil)
	}
	raw, err := s.client.FormatoImpresion(ctx, sess, movimientoID)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al cargar el formato de impresión")
	}
	return extraerHTML(raw), nil
}

func extraerHTML(raw []byte) string {
	trimmed := bytes.TrimSpace(raw)
	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return string(trimmed)
	}
	switch t := v.(type) {
	case string:
		return t
	case map[string]any:
		if html, ok := t["html"].(string); ok {
			return html
		}
	}
	return string(trimmed)
}

// Auxiliares retorna el catálogo de instituciones bancarias.
func (s *BancosService) Auxiliares(ctx context.Context, sess *session.Session) (Lista[models.BancoAuxiliar], error) {
	raw, err := s.client.BancosAuxiliares(ctx, sess)
	if err != nil {
		return Lista[models.BancoAuxiliar]{}, helpers.AsAppError(err, "Error al cargar la lista de bancos")
	}
	records, aviso := decodeRegistros(recursoAuxiliares, raw)
	return Lista[models.BancoAuxiliar]{Items: normalize.BancosAuxiliares(records), Aviso: aviso}, nil
}

// RegistrarMovimiento registra un débito o crédito directo. En efectivo el banco
// auxiliar es EFECTIVO; el débito informa el banco destino y el crédito el origen.
func (s *BancosService) RegistrarMovimiento(ctx context.Context, sess *session.Session, in internaldto.MovimientoBancoRequest) (string, error) {
	payload, err := BuildMovimientoBancario(in, sess.Usuario())
	if err != nil {
		return "", err
	}
	raw, err := s.client.RegistrarMovimientoBanco(ctx, sess, payload)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al registrar el movimiento")
	}
	return resultadoEscritura(recursoBancos, raw, "Movimiento registrado con éxito", "Error al registrar el movimiento")
}

// BuildMovimientoBancario valida y arma el cuerpo de POST /bancos/movimientos.
func BuildMovimientoBancario(in internaldto.MovimientoBancoRequest, usuario string) (models.MovimientoBancario, error) {
	monto, err := montoPositivo(in.MontoBs, "montoBs")
	if err != nil {
		return models.MovimientoBancario{}, err
	}

	formaPago := strings.ToUpper(limpiar(in.FormaPago))
	efectivo := formaPago == models.FormaPagoEfectivo
	banco := limpiar(in.BancoAux)
	referencia := limpiar(in.Referencia)
	if efectivo {
		banco = models.TipoEfectivo
	} else if banco == "" || referencia == "" {
		return models.MovimientoBancario{}, helpers.NewAppError(http.StatusBadRequest,
			"El banco y la referencia son obligatorios salvo en efectivo", nil)
	}

	debito := esDebito(in.Tipo)
	out := models.MovimientoBancario{
		IDBanco:    in.IDBanco.Int(),
		IDUsuario:  usuario,
		Moneda:     models.MonedaBs,
		FormaPago:  formaPago,
		MontoBs:    monto.InexactFloat64(),
		Referencia: referencia,
		Fecha:      fechaISO(in.Fecha),
		Comentario: limpiar(in.Comentario),
	}
	if debito {
		out.Clase = claseMovimientoDebito
		out.BancoDestino = banco
	} else {
		out.Clase = claseMovimientoCredito
		out.BancoOrigen = banco
	}
	return out, nil
}

func esDebito(tipo string) bool {
	t := strings.ToLower(limpiar(tipo))
	return t == claseMovimientoDebito || t == "db"
}
