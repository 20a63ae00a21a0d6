// Package session mantiene la sesión explícita de cada usuario autenticado contra el backend.
// Se crea al seleccionar cliente y se destruye en logout o ante un 401 del backend.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNotFound indica que no existe una sesión vigente para el token.
var ErrNotFound = errors.New("sesión no encontrada")

// Session datos de la sesión; Token es el bearer final emitido por /select-client.
type Session struct {
	ID            string    `json:"id"`
	Token         string    `json:"token"`
	UserID        string    `json:"userId"`
	NombreUsuario string    `json:"nombreUsuario"`
	CorreoUsuario string    `json:"correoUsuario,omitempty"`
	ClienteID     int       `json:"clienteId"`
	CreadaEn      time.Time `json:"creadaEn"`
	ExpiraEn      time.Time `json:"expiraEn,omitempty"`
}

// Datos adicionales conocidos al momento del login.
type Datos struct {
	UserID        string
	NombreUsuario string
	CorreoUsuario string
	ClienteID     int
}

// Store persiste sesiones indexadas por token.
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	// Delete reporta si existía una sesión vigente que se eliminó.
	Delete(ctx context.Context, token string) (bool, error)
}

// New crea la sesión. Si el token es un JWT con exp, ExpiraEn lo refleja; la firma no se
// verifica porque el emisor es el backend y aquí solo se lee la expiración.
func New(token string, datos Datos, now time.Time) *Session {
	s := &Session{
		ID:            uuid.NewString(),
		Token:         token,
		UserID:        datos.UserID,
		NombreUsuario: datos.NombreUsuario,
		CorreoUsuario: datos.CorreoUsuario,
		ClienteID:     datos.ClienteID,
		CreadaEn:      now,
	}
	if exp, ok := Expiracion(token); ok {
		s.ExpiraEn = exp
	}
	return s
}

// Expiracion lee el claim exp de un JWT sin verificar la firma.
func Expiracion(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// Expirada reporta si la sesión venció a la hora dada.
func (s *Session) Expirada(now time.Time) bool {
	return !s.ExpiraEn.IsZero() && !now.Before(s.ExpiraEn)
}

// Bearer arma el valor del header Authorization.
func (s *Session) Bearer() string {
	return "Bearer " + s.Token
}

// Usuario retorna el id del usuario o "Sistema" cuando no se conoce.
func (s *Session) Usuario() string {
	if s == nil || strings.TrimSpace(s.UserID) == "" {
		return "Sistema"
	}
	return s.UserID
}

// Key es la llave de almacenamiento de un token; nunca se guarda el token en claro como llave.
func Key(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// TTL calcula cuánto debe vivir la sesión en el store.
func TTL(s *Session, now time.Time, def time.Duration) time.Duration {
	if s.ExpiraEn.IsZero() {
		return def
	}
	if ttl := s.ExpiraEn.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
