package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/envelope"
	"github.com/condominios-online/condominios_mid/internal/normalize"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

const (
	recursoProveedores = "proveedores"

	// MensajeFormatoProveedor aviso cuando body no es arreglo ni vacío.
	MensajeFormatoProveedor = "Formato de datos de proveedor inesperado. Contacte al administrador de la API."
)

// ProveedoresService administra los proveedores. El backend responde sin la
// envoltura @res, directamente {response, status, body}.
type ProveedoresService struct {
	client *clients.CondominiosClient
}

func NewProveedoresService(client *clients.CondominiosClient) *ProveedoresService {
	return &ProveedoresService{client: client}
}

// Listar retorna una página de proveedores.
func (s *ProveedoresService) Listar(ctx context.Context, sess *session.Session, page, limit int) (internaldto.PageDTO[models.Proveedor], string, error) {
	pagina := internaldto.PageDTO[models.Proveedor]{Items: []models.Proveedor{}, Page: page, Size: limit}

	raw, err := s.client.Proveedores(ctx, sess, page, limit)
	if err != nil {
		return pagina, "", helpers.AsAppError(err, "Error al obtener los proveedores")
	}
	p, err := envelope.DecodePlain(raw)
	if err != nil {
		return pagina, degradar(recursoProveedores, err), nil
	}
	if p.Status != "" && !p.Exitoso() {
		msg := limpiar(p.Response)
		if msg == "" {
			msg = "Error al obtener los proveedores"
		}
		return pagina, "", helpers.NewAppError(http.StatusBadGateway, msg, nil)
	}

	switch body := p.Body.(type) {
	case nil:
		return pagina, avisoSinProveedores(p.Response), nil
	case string:
		if limpiar(body) == "" {
			return pagina, avisoSinProveedores(p.Response), nil
		}
		return pagina, MensajeFormatoProveedor, nil
	case []any:
		records := make([]map[string]any, 0, len(body))
		for _, item := range body {
			if m, ok := item.(map[string]any); ok {
				records = append(records, m)
			}
		}
		pagina.Items = normalize.Proveedores(records)
		pagina.Total = len(pagina.Items)
		if len(pagina.Items) == 0 {
			return pagina, avisoSinProveedores(p.Response), nil
		}
		return pagina, "", nil
	default:
		return pagina, MensajeFormatoProveedor, nil
	}
}

func avisoSinProveedores(response string) string {
	if r := limpiar(response); strings.Contains(strings.ToLower(r), "no encontrado") {
		return "Información: " + r
	}
	return ""
}

func (s *ProveedoresService) Crear(ctx context.Context, sess *session.Session, in internaldto.ProveedorRequest) (string, error) {
	raw, err := s.client.CrearProveedor(ctx, sess, BuildProveedorPayload(in))
	if err != nil {
		return "", helpers.AsAppError(err, "Error al crear el proveedor")
	}
	return resultadoEscritura(recursoProveedores, raw, "Proveedor creado correctamente", "Error al crear el proveedor")
}

func (s *ProveedoresService) Actualizar(ctx context.Context, sess *session.Session, id int, in internaldto.ProveedorRequest) (string, error) {
	raw, err := s.client.ActualizarProveedor(ctx, sess, id, BuildProveedorPayload(in))
	if err != nil {
		return "", helpers.AsAppError(err, "Error al actualizar el proveedor")
	}
	return resultadoEscritura(recursoProveedores, raw, "Proveedor actualizado correctamente", "Error al actualizar el proveedor")
}

func (s *ProveedoresService) Eliminar(ctx context.Context, sess *session.Session, id int) (string, error) {
	raw, err := s.client.EliminarProveedor(ctx, sess, id)
	if err != nil {
		return "", helpers.AsAppError(err, "Error al eliminar el proveedor")
	}
	return resultadoEscritura(recursoProveedores, raw, "Proveedor eliminado correctamente", "Error al eliminar el proveedor")
}

// BuildProveedorPayload arma el cuerpo de alta/edición: listas unidas por ", " y
// textos opcionales vacíos como null.
func BuildProveedorPayload(in internaldto.ProveedorRequest) models.ProveedorPayload {
	activo := models.ProveedorActivo
	if in.Activo != nil && !*in.Activo {
		activo = models.ProveedorInactivo
	}
	return models.ProveedorPayload{
		Personalidad:    strings.ToUpper(limpiar(in.Personalidad)),
		IDFiscal:        limpiar(in.IDFiscal),
		RazonSocial:     limpiar(in.RazonSocial),
		DomicilioFiscal: limpiar(in.DomicilioFiscal),
		Emails:          normalize.UnirLista(in.Emails),
		Telefonos:       normalize.UnirLista(in.Telefonos),
		OtrosDatos:      textoOpcional(in.OtrosDatos),
		Comentarios:     textoOpcional(in.Comentarios),
		Activo:          activo,
	}
}
