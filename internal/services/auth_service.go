package services

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/beego/beego/v2/core/logs"

	"github.com/condominios-online/condominios_mid/helpers"
	"github.com/condominios-online/condominios_mid/internal/clients"
	internaldto "github.com/condominios-online/condominios_mid/internal/dto"
	"github.com/condominios-online/condominios_mid/internal/metrics"
	"github.com/condominios-online/condominios_mid/internal/session"
	"github.com/condominios-online/condominios_mid/models"
)

// AuthService maneja el login en dos fases y el ciclo de vida de la sesión.
type AuthService struct {
	client *clients.CondominiosClient
	store  session.Store
	now    func() time.Time
}

func NewAuthService(client *clients.CondominiosClient, store session.Store) *AuthService {
	return &AuthService{client: client, store: store, now: time.Now}
}

// Login valida las credenciales y retorna el token de selección con los clientes disponibles.
func (s *AuthService) Login(ctx context.Context, in internaldto.LoginRequest) (*models.LoginResultado, error) {
	res, err := s.client.Login(ctx, strings.TrimSpace(in.Login), in.Pwd)
	if err != nil {
		return nil, helpers.AsAppError(err, "no se pudo iniciar sesión")
	}
	if res.SelectionToken == "" {
		return nil, helpers.NewAppError(http.StatusBadGateway, "el backend no retornó token de selección", nil)
	}
	if res.Clientes == nil {
		res.Clientes = []models.ClienteLogin{}
	}
	return res, nil
}

// SelectClient canjea el token de selección por el token de trabajo y abre la sesión.
func (s *AuthService) SelectClient(ctx context.Context, in internaldto.SelectClientRequest) (*session.Session, error) {
	token, err := s.client.SelectClient(ctx, in.SelectionToken, in.IDCliente.Int())
	if err != nil {
		return nil, helpers.AsAppError(err, "no se pudo seleccionar el cliente")
	}

	now := s.now()
	sess := session.New(token, session.Datos{
		UserID:        strings.TrimSpace(in.UserID),
		NombreUsuario: strings.TrimSpace(in.NombreUsuario),
		CorreoUsuario: strings.TrimSpace(in.CorreoUsuario),
		ClienteID:     in.IDCliente.Int(),
	}, now)
	if sess.Expirada(now) {
		return nil, helpers.NewAppError(http.StatusUnauthorized, clients.MensajeSesionExpirada, nil)
	}
	if err := s.store.Save(ctx, sess); err != nil {
		return nil, helpers.NewAppError(http.StatusInternalServerError, "no se pudo guardar la sesión", err)
	}
	metrics.SesionesActivas.Inc()
	logs.Info("sesión %s abierta para usuario %s cliente %d", sess.ID, sess.Usuario(), sess.ClienteID)
	return sess, nil
}

// Logout destruye la sesión. Cerrar una sesión inexistente no es error.
func (s *AuthService) Logout(ctx context.Context, sess *session.Session) error {
	if sess == nil {
		return nil
	}
	borrada, err := s.store.Delete(ctx, sess.Token)
	if err != nil {
		return helpers.NewAppError(http.StatusInternalServerError, "no se pudo cerrar la sesión", err)
	}
	if borrada {
		metrics.SesionesActivas.Dec()
		logs.Info("sesión %s cerrada", sess.ID)
	}
	return nil
}

// Sesion resuelve la sesión vigente de un token.
func (s *AuthService) Sesion(ctx context.Context, token string) (*session.Session, error) {
	return s.store.Get(ctx, token)
}
