package helpers

import (
	"errors"
	"strings"

	"github.com/beego/beego/v2/server/web/context"

	"github.com/condominios-online/condominios_mid/internal/session"
)

const ctxSessionKey = "__condominios_mid_session"

var (
	// ErrNoAuthHeader se devuelve cuando no se encuentra el header Authorization.
	ErrNoAuthHeader = errors.New("authorization header missing")
	// ErrInvalidToken se devuelve cuando el header no trae un bearer.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrNoSession indica que el filtro de autenticación no dejó sesión en el contexto.
	ErrNoSession = errors.New("sesión no disponible en el contexto")
)

// BearerToken extrae el token del header Authorization.
func BearerToken(ctx *context.Context) (string, error) {
	header := strings.TrimSpace(ctx.Input.Header("Authorization"))
	if header == "" {
		return "", ErrNoAuthHeader
	}

	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", ErrInvalidToken
	}
	token := strings.TrimSpace(header[7:])
	if token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}

// SetSession guarda la sesión resuelta por el filtro de autenticación.
func SetSession(ctx *context.Context, s *session.Session) {
	ctx.Input.SetData(ctxSessionKey, s)
}

// SessionFrom retorna la sesión del request actual.
func SessionFrom(ctx *context.Context) (*session.Session, error) {
	if ctx == nil {
		return nil, ErrNoSession
	}
	if s, ok := ctx.Input.GetData(ctxSessionKey).(*session.Session); ok && s != nil {
		return s, nil
	}
	return nil, ErrNoSession
}
