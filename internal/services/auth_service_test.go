package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/metrics"
	"github.com/condominios-online/condominios_mid/internal/session"
)

func tokenConExp(t *testing.T, exp time.Time) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("k"))
	require.NoError(t, err)
	return tok
}

func TestSelectClientAbreSesion(t *testing.T) {
	trabajo := tokenConExp(t, time.Now().Add(time.Hour))
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/select-client", r.URL.Path)
		assert.Equal(t, "Bearer sel-1", r.Header.Get("Authorization"))
		body := leerCuerpo(t, r)
		assert.Equal(t, 3.0, body["idCliente"])
		_, _ = w.Write([]byte(`{"token":"` + trabajo + `"}`))
	})
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(c, store)

	sess, err := svc.SelectClient(context.Background(), internaldto.SelectClientRequest{
		SelectionToken: "sel-1", IDCliente: 3, UserID: " 5 ", NombreUsuario: "ana",
	})
	require.NoError(t, err)
	assert.Equal(t, "5", sess.UserID)
	assert.Equal(t, 3, sess.ClienteID)
	assert.False(t, sess.ExpiraEn.IsZero())

	guardada, err := svc.Sesion(context.Background(), trabajo)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, guardada.ID)

	require.NoError(t, svc.Logout(context.Background(), guardada))
	_, err = svc.Sesion(context.Background(), trabajo)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestLogoutRepetidoDescuentaUnaVez(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	svc := NewAuthService(backend(t, func(w http.ResponseWriter, r *http.Request) {}), store)
	sess := session.New("tok-logout", session.Datos{UserID: "1"}, time.Now())
	require.NoError(t, store.Save(context.Background(), sess))

	antes := testutil.ToFloat64(metrics.SesionesActivas)
	require.NoError(t, svc.Logout(context.Background(), sess))
	require.NoError(t, svc.Logout(context.Background(), sess))
	CerrarSesionHook(store)(context.Background(), sess)

	assert.Equal(t, antes-1, testutil.ToFloat64(metrics.SesionesActivas))
}

func TestSelectClientTokenVencido(t *testing.T) {
	vencido := tokenConExp(t, time.Now().Add(-time.Minute))
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"token":"` + vencido + `"}`))
	})
	svc := NewAuthService(c, session.NewMemoryStore(time.Hour))

	_, err := svc.SelectClient(context.Background(), internaldto.SelectClientRequest{SelectionToken: "sel", IDCliente: 1})
	assert.Equal(t, http.StatusUnauthorized, statusDe(t, err))
}

func TestLoginSinTokenDeSeleccion(t *testing.T) {
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"user":{"id":1}}`))
	})
	_, err := NewAuthService(c, session.NewMemoryStore(time.Hour)).Login(context.Background(), internaldto.LoginRequest{Login: "ana", Pwd: "x"})
	assert.Equal(t, http.StatusBadGateway, statusDe(t, err))
}

func TestCerrarSesionHookAnte401(t *testing.T) {
	store := session.NewMemoryStore(time.Hour)
	c := backend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	c.OnUnauthorized(CerrarSesionHook(store))

	sess := session.New("tok-401", session.Datos{UserID: "1"}, time.Now())
	require.NoError(t, store.Save(context.Background(), sess))

	_, err := NewEntidadesService(c).Listar(context.Background(), sess)
	assert.Equal(t, http.StatusUnauthorized, statusDe(t, err))

	_, err = store.Get(context.Background(), "tok-401")
	assert.ErrorIs(t, err, session.ErrNotFound)
}
