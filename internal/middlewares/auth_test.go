package middlewares

import (
	stdctx "context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beego/beego/v2/server/web/context"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhelpers "github.com/condominios-online/condominios_mid/internal/helpers"
	internalservices "github.com/condominios-online/condominios_mid/internal/services"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models/requestresponse"
)

func nuevoContexto(method, path, auth string) (*context.Context, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(method, path, nil)
	if auth != "" {
		r.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	ctx := context.NewContext()
	ctx.Reset(w, r)
	return ctx, w
}

func TestAuthFilterRutasPublicas(t *testing.T) {
	for _, path := range []string{"/v1/auth/login", "/v1/auth/select-client/"} {
		ctx, w := nuevoContexto(http.MethodPost, path, "")
		AuthFilter(ctx)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
	}

	ctx, w := nuevoContexto(http.MethodOptions, "/v1/entidades", "")
	AuthFilter(ctx)
	assert.Empty(t, w.Body.String())
}

func TestAuthFilterSinToken(t *testing.T) {
	ctx, w := nuevoContexto(http.MethodGet, "/v1/entidades", "")
	AuthFilter(ctx)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	var resp requestresponse.APIResponseDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, http.StatusUnauthorized, resp.Status)
}

func TestAuthFilterTokenDesconocido(t *testing.T) {
	ctx, w := nuevoContexto(http.MethodGet, "/v1/bancos", "Bearer no-existe")
	AuthFilter(ctx)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthFilterDejaSesion(t *testing.T) {
	sess := session.New("token-vigente", session.Datos{UserID: "u1", ClienteID: 3}, time.Now())
	require.NoError(t, internalservices.Sesiones().Save(stdctx.Background(), sess))
	t.Cleanup(func() { _, _ = internalservices.Sesiones().Delete(stdctx.Background(), sess.Token) })

	ctx, w := nuevoContexto(http.MethodGet, "/v1/bancos", "Bearer token-vigente")
	AuthFilter(ctx)

	assert.Empty(t, w.Body.String())
	got, err := internalhelpers.SessionFrom(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, got.ClienteID)
	assert.Equal(t, "u1", got.UserID)
}
