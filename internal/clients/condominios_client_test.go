package clients

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

func nuevoBackend(t *testing.T, h http.HandlerFunc) *CondominiosClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewCondominiosClient(srv.URL, 2*time.Second)
}

func TestDoSendsBearerAndRequestID(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/entidades/", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "req-77", r.Header.Get("X-Request-Id"))
		_, _ = w.Write([]byte(`{"data":[]}`))
	})

	ctx := WithRequestID(context.Background(), "req-77")
	raw, err := c.Entidades(ctx, &session.Session{Token: "tok-1"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, string(raw))
}

func TestDoUnauthorizedInvokesHook(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"token vencido"}`))
	})
	var cerrada *session.Session
	c.OnUnauthorized(func(_ context.Context, s *session.Session) { cerrada = s })

	sess := &session.Session{ID: "s1", Token: "tok-1"}
	_, err := c.Bancos(context.Background(), sess)
	require.Error(t, err)

	appErr := helpers.AsAppError(err, "")
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, MensajeSesionExpirada, appErr.Message)
	require.NotNil(t, cerrada)
	assert.Equal(t, "s1", cerrada.ID)
}

func TestLogin(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana", body["login"])
		assert.Equal(t, "secreto", body["pwd"])
		_, _ = w.Write([]byte(`{"selectionToken":"sel","user":{"id":5,"login":"ana"},"clientes":[{"id":"3","razonSocial":"Res. Los Pinos"}]}`))
	})

	res, err := c.Login(context.Background(), "ana", "secreto")
	require.NoError(t, err)
	assert.Equal(t, "sel", res.SelectionToken)
	assert.Equal(t, 5, res.User.ID.Int())
	require.Len(t, res.Clientes, 1)
	assert.Equal(t, 3, res.Clientes[0].ID.Int())
}

func TestLoginBadCredentials(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Usuario o clave incorrectos"}`))
	})

	_, err := c.Login(context.Background(), "ana", "mal")
	appErr := helpers.AsAppError(err, "")
	assert.Equal(t, http.StatusUnauthorized, appErr.Status)
	assert.Equal(t, "Usuario o clave incorrectos", appErr.Message)
}

func TestSelectClientUsesSelectionToken(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sel", r.Header.Get("Authorization"))
		var body map[string]int
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, 3, body["idCliente"])
		_, _ = w.Write([]byte(`{"token":"trabajo"}`))
	})

	token, err := c.SelectClient(context.Background(), "sel", 3)
	require.NoError(t, err)
	assert.Equal(t, "trabajo", token)
}

func TestEliminarEntidadSendsMotivo(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/entidades/12", r.URL.Path)
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"action":"delete","motivoEliminacion":"venta"}`, string(b))
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	_, err := c.EliminarEntidad(context.Background(), &session.Session{Token: "t"}, 12, "venta")
	require.NoError(t, err)
}

func TestProveedoresQuery(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/proveedores", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		_, _ = w.Write([]byte(`{"status":"success","body":""}`))
	})

	_, err := c.Proveedores(context.Background(), &session.Session{Token: "t"}, 1, 100)
	require.NoError(t, err)
}

func TestRegistrarTransaccion(t *testing.T) {
	c := nuevoBackend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/transacciones/", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "NDE", body["clase"])
		_, _ = w.Write([]byte(`{"status":"success"}`))
	})

	_, err := c.RegistrarTransaccion(context.Background(), &session.Session{Token: "t"}, models.Nota{Clase: models.ClaseNotaDebito})
	require.NoError(t, err)
}

func TestCanceledContext(t *testing.T) {
	c := NewCondominiosClient("http://127.0.0.1:1", time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Bancos(ctx, &session.Session{Token: "t"})
	assert.ErrorIs(t, err, context.Canceled)
}
