package services

import (
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

const recursoEntidades = "entidades"

// EntidadesService administra las unidades facturables del condominio.
type EntidadesService struct {
	client *clients.CondominiosClient
}

func NewEntidadesService(client *clients.CondominiosClient) *EntidadesService {
	return &EntidadesService{client: client}
}

// Listar retorna las entidades normalizadas. Un contenido anidado ilegible produce
// una lista vacía con aviso, no un error.
func (s *EntidadesService) Listar(ctx context.Context, sess *session.Session) (Lista[models.Entidad], error) {
	raw, err := s.client.Entidades(ctx, sess)
	if err != nil {
		return Lista[models.Entidad]{}, helpers.AsAppError(err, "Error al cargar las entidades")
	}
	records, aviso := decodeRegistros(recursoEntidades, raw)
	return Lista[models.Entidad]{Items: normalize.Entidades(records), Aviso: aviso}, nil
}

// Obtener consulta el detalle y lo mezcla sobre fallback (normalmente el registro de la
// lista). Sin fallback y sin detalle la entidad no existe.
func (s *EntidadesService) Obtener(ctx context.Context, sess *session.Session, id int, fallback map[string]any) (models.Entidad, string, error) {
	raw, err := s.client.Entidad(ctx, sess, id)
	if err != nil {
		return models.Entidad{}, "", helpers.AsAppError(err, "Error al cargar la entidad")
	}

	detalle, err := envelope.DecodeFirst(raw, fallback)
	aviso := ""
	if err != nil {
		aviso = degradar(recursoEntidades, err)
	}
	if len(detalle) == 0 {
		if aviso != "" {
			return models.Entidad{}, aviso, nil
		}
		return models.Entidad{}, "", helpers.NewAppError(http.StatusNotFound, "Entidad no encontrada", nil)
	}
	return normalize.Entidad(detalle, id-1), aviso, nil
}

// Crear registra una entidad nueva.
func (s *EntidadesService) Crear(ctx context.Context, sess *session.Session, in internaldto.EntidadRequest) (string, error) {
	payload, err := BuildEntidadPayload(in)
	if err != nil {
		return "", err
	}
	raw, err := s.client.CrearEntidad(ctx, sess, payload)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al crear la entidad")
	}
	return resultadoEscritura(recursoEntidades, raw, "Entidad creada correctamente", "Error al crear la entidad")
}

// Actualizar reemplaza la entidad completa (PUT).
func (s *EntidadesService) Actualizar(ctx context.Context, sess *session.Session, id int, in internaldto.EntidadRequest) (string, error) {
	payload, err := BuildEntidadPayload(in)
	if err != nil {
		return "", err
	}
	raw, err := s.client.ActualizarEntidad(ctx, sess, id, payload)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al actualizar la entidad")
	}
	return resultadoEscritura(recursoEntidades, raw, "Entidad actualizada correctamente", "Error al actualizar la entidad")
}

// Eliminar hace la baja lógica; el motivo es obligatorio.
func (s *EntidadesService) Eliminar(ctx context.Context, sess *session.Session, id int, motivo string) (string, error) {
	motivo = strings.TrimSpace(motivo)
	if motivo == "" {
		return "", helpers.NewAppError(http.StatusBadRequest, "El motivo de eliminación es obligatorio", nil)
	}
	raw, err := s.client.EliminarEntidad(ctx, sess, id, motivo)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al eliminar la entidad")
	}
	return resultadoEscritura(recursoEntidades, raw, "Entidad eliminada correctamente", "Error al eliminar la entidad")
}

// BuildEntidadPayload valida el formulario y arma el cuerpo que espera el backend.
func BuildEntidadPayload(in internaldto.EntidadRequest) (models.EntidadPayload, error) {
	borrador := models.Entidad{
		Condicion:     in.Condicion,
		Representante: in.Representante,
		Inquilino:     in.Inquilino,
	}
	condicion := normalize.CondicionDe(borrador)
	representante := normalize.RepresentanteDe(borrador, condicion)

	alquilada := condicion == models.CondicionAlquilada
	if alquilada && (limpiar(in.Inquilino.Nombre) == "" || limpiar(in.Inquilino.Telefono) == "") {
		return models.EntidadPayload{}, helpers.NewAppError(http.StatusBadRequest,
			"Para una entidad alquilada el nombre y el teléfono del inquilino son obligatorios", nil)
	}
	if representante == models.RepresentanteInquilino && !alquilada {
		return models.EntidadPayload{}, helpers.NewAppError(http.StatusBadRequest,
			"El inquilino solo puede ser representante de una entidad alquilada", nil)
	}

	saldo := 0.0
	if !in.SaldoActual.Vacio() {
		d, err := normalize.ParseMontoFormulario(string(in.SaldoActual))
		if err != nil {
			return models.EntidadPayload{}, helpers.NewAppError(http.StatusBadRequest, "Saldo actual inválido", err)
		}
		saldo = d.Round(2).InexactFloat64()
	}

	propietario := in.Propietario
	propietario.Propietario = true
	if propietario.Correos == nil {
		propietario.Correos = []string{}
	}
	propietarioJSON, err := json.Marshal(propietario)
	if err != nil {
		return models.EntidadPayload{}, err
	}

	inquilino := models.Inquilino{}
	if alquilada {
		inquilino = in.Inquilino
	}
	inquilinoJSON, err := json.Marshal(inquilino)
	if err != nil {
		return models.EntidadPayload{}, err
	}

	clasificacion := strings.ToUpper(limpiar(in.Clasificacion))
	if clasificacion == "" {
		clasificacion = models.ClasificacionSolvente
	}
	estado := models.EstadoActivo
	if in.EstadoActual != nil && !*in.EstadoActual {
		estado = models.EstadoInactivo
	}
	clase := limpiar(in.Clase)

	return models.EntidadPayload{
		Clase:          clase,
		Nombre:         clase,
		Referencia:     limpiar(in.Referencia),
		Representante:  strings.ToLower(representante),
		Propietario:    string(propietarioJSON),
		Inquilino:      string(inquilinoJSON),
		SaldoActual:    saldo,
		Clasificacion:  clasificacion,
		FecUltGestion:  fechaOpcional(in.FecUltGestion),
		FecProxGestion: fechaOpcional(in.FecProxGestion),
		Comentarios:    limpiar(in.Comentarios),
		EstadoActual:   estado,
		Condicion:      strings.ToUpper(condicion),
		Vehiculos:      in.Vehiculos,
	}, nil
}
