package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/beego/beego/v2/core/logs"
	"github.com/goccy/go-json"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
	rootservices "github.com/condominios-online/condominios_mid/services"
)

// MensajeSesionExpirada is returned to the caller whenever the backend answers 401.
const MensajeSesionExpirada = "sesión expirada o inválida"

const upstreamCondominios = "condominios"

// CondominiosClient wraps the operations against the condominios backend.
// Every authenticated call carries the session bearer token.
type CondominiosClient struct {
	baseURL string
	timeout time.Duration

	mu             sync.RWMutex
	onUnauthorized func(ctx context.Context, sess *session.Session)
}

var (
	condominiosClient     *CondominiosClient
	condominiosClientOnce sync.Once
)

// NewCondominiosClient builds a client for the given base URL.
func NewCondominiosClient(baseURL string, timeout time.Duration) *CondominiosClient {
	return &CondominiosClient{baseURL: baseURL, timeout: timeout}
}

// Condominios returns a singleton client configured from GetConfig.
func Condominios() *CondominiosClient {
	condominiosClientOnce.Do(func() {
		cfg := rootservices.GetConfig()
		condominiosClient = NewCondominiosClient(cfg.CondominiosBaseURL, cfg.RequestTimeout)
	})
	return condominiosClient
}

// OnUnauthorized registers the hook invoked when the backend rejects a session token.
func (c *CondominiosClient) OnUnauthorized(fn func(ctx context.Context, sess *session.Session)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Do performs an authenticated call and returns the raw body.
func (c *CondominiosClient) Do(ctx context.Context, sess *session.Session, method, path string, in any) ([]byte, error) {
	if err := ctxErr(ctx); err != nil {
		return nil, err
	}
	headers := map[string]string{"X-Request-Id": RequestID(ctx)}
	if sess != nil {
		headers = rootservices.AddBearer(headers, sess.Token)
	}

	raw, err := helpers.Do(ctx, helpers.Request{
		Upstream: upstreamCondominios,
		Method:   method,
		URL:      c.baseURL + path,
		Headers:  headers,
		Body:     in,
		Timeout:  c.timeout,
	})
	if err != nil {
		if sess != nil && helpers.IsHTTPError(err, http.StatusUnauthorized) {
			logs.Warn("condominios %s %s: 401, cerrando sesión %s", method, path, sess.ID)
			c.mu.RLock()
			hook := c.onUnauthorized
			c.mu.RUnlock()
			if hook != nil {
				hook(ctx, sess)
			}
			return nil, helpers.NewAppError(http.StatusUnauthorized, MensajeSesionExpirada, err)
		}
		return nil, err
	}
	return raw, nil
}

// Login performs the first authentication phase.
func (c *CondominiosClient) Login(ctx context.Context, login, pwd string) (*models.LoginResultado, error) {
	raw, err := c.Do(ctx, nil, http.MethodPost, "/login", map[string]string{"login": login, "pwd": pwd})
	if err != nil {
		if helpers.IsHTTPError(err, http.StatusUnauthorized) || helpers.IsHTTPError(err, http.StatusForbidden) {
			appErr := helpers.AsAppError(err, "Credenciales inválidas")
			appErr.Status = http.StatusUnauthorized
			return nil, appErr
		}
		return nil, err
	}
	var out models.LoginResultado
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("respuesta de login inválida: %w", err)
	}
	return &out, nil
}

// SelectClient exchanges the selection token for the work token of one client.
func (c *CondominiosClient) SelectClient(ctx context.Context, selectionToken string, idCliente int) (string, error) {
	raw, err := c.Do(ctx, &session.Session{Token: selectionToken}, http.MethodPost, "/select-client", map[string]int{"idCliente": idCliente})
	if err != nil {
		return "", err
	}
	var out models.SeleccionResultado
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("respuesta de select-client inválida: %w", err)
	}
	if out.Token == "" {
		return "", helpers.NewAppError(http.StatusBadGateway, "el backend no retornó token de trabajo", nil)
	}
	return out.Token, nil
}

// Entidades lists every entity of the current client.
func (c *CondominiosClient) Entidades(ctx context.Context, sess *session.Session) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/entidades/", nil)
}

// Entidad fetches the detail of one entity.
func (c *CondominiosClient) Entidad(ctx context.Context, sess *session.Session, id int) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/entidades/"+strconv.Itoa(id), nil)
}

func (c *CondominiosClient) CrearEntidad(ctx context.Context, sess *session.Session, payload models.EntidadPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPost, "/entidades/", payload)
}

func (c *CondominiosClient) ActualizarEntidad(ctx context.Context, sess *session.Session, id int, payload models.EntidadPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPut, "/entidades/"+strconv.Itoa(id), payload)
}

// EliminarEntidad sends the soft-delete body {action:"delete", motivoEliminacion}.
func (c *CondominiosClient) EliminarEntidad(ctx context.Context, sess *session.Session, id int, motivo string) ([]byte, error) {
	body := models.EliminacionPayload{Action: "delete", MotivoEliminacion: motivo}
	return c.Do(ctx, sess, http.MethodDelete, "/entidades/"+strconv.Itoa(id), body)
}

func (c *CondominiosClient) Bancos(ctx context.Context, sess *session.Session) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/bancos/", nil)
}

func (c *CondominiosClient) CrearBanco(ctx context.Context, sess *session.Session, payload models.BancoPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPost, "/bancos/", payload)
}

func (c *CondominiosClient) ActualizarBanco(ctx context.Context, sess *session.Session, id int, payload models.BancoPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPut, "/bancos/"+strconv.Itoa(id), payload)
}

// EstadoCuentaBanco returns the statement lines of one account.
func (c *CondominiosClient) EstadoCuentaBanco(ctx context.Context, sess *session.Session, id int) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/bancos/cuenta/"+strconv.Itoa(id), nil)
}

// FormatoImpresion returns the printable HTML of one bank movement.
func (c *CondominiosClient) FormatoImpresion(ctx context.Context, sess *session.Session, movimientoID string) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/bancos/formato-impresion/"+url.PathEscape(movimientoID), nil)
}

// BancosAuxiliares lists the catalog of banking institutions.
func (c *CondominiosClient) BancosAuxiliares(ctx context.Context, sess *session.Session) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodGet, "/bancos/auxiliar/list", nil)
}

func (c *CondominiosClient) RegistrarMovimientoBanco(ctx context.Context, sess *session.Session, payload models.MovimientoBancario) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPost, "/bancos/movimientos", payload)
}

// Proveedores lists providers; the backend answers without the @res envelope.
func (c *CondominiosClient) Proveedores(ctx context.Context, sess *session.Session, page, limit int) ([]byte, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return c.Do(ctx, sess, http.MethodGet, "/proveedores?"+q.Encode(), nil)
}

func (c *CondominiosClient) CrearProveedor(ctx context.Context, sess *session.Session, payload models.ProveedorPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPost, "/proveedores", payload)
}

func (c *CondominiosClient) ActualizarProveedor(ctx context.Context, sess *session.Session, id int, payload models.ProveedorPayload) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPut, "/proveedores/"+strconv.Itoa(id), payload)
}

func (c *CondominiosClient) EliminarProveedor(ctx context.Context, sess *session.Session, id int) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodDelete, "/proveedores/"+strconv.Itoa(id), nil)
}

// RegistrarTransaccion posts any transaction class (COB, NDE, NCE, DB, CR).
func (c *CondominiosClient) RegistrarTransaccion(ctx context.Context, sess *session.Session, payload any) ([]byte, error) {
	return c.Do(ctx, sess, http.MethodPost, "/transacciones/", payload)
}
