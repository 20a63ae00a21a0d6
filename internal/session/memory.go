package session

import (
	"context"
	"sync"
	"time"
)

// barridoCada es el intervalo mínimo entre dos barridos de sesiones vencidas.
const barridoCada = time.Minute

// MemoryStore guarda las sesiones en memoria del proceso.
type MemoryStore struct {
	mu         sync.RWMutex
	sesiones   map[string]*Session
	ttl        time.Duration
	now        func() time.Time
	ultBarrido time.Time
	alExpirar  func(n int)
}

// NewMemoryStore crea el store; ttl aplica a sesiones cuyo token no trae expiración.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sesiones: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// OnExpire registra fn, que recibe cuántas sesiones vencidas se descartaron.
func (m *MemoryStore) OnExpire(fn func(n int)) {
	m.mu.Lock()
	m.alExpirar = fn
	m.mu.Unlock()
}

// Save guarda la sesión y, como mucho una vez por minuto, descarta las vencidas.
func (m *MemoryStore) Save(_ context.Context, s *Session) error {
	cp := *s
	now := m.now()
	if cp.ExpiraEn.IsZero() && m.ttl > 0 {
		cp.ExpiraEn = now.Add(m.ttl)
	}
	m.mu.Lock()
	m.sesiones[Key(s.Token)] = &cp
	vencidas := 0
	if now.Sub(m.ultBarrido) >= barridoCada {
		vencidas = m.barrerLocked(now)
		m.ultBarrido = now
	}
	fn := m.alExpirar
	m.mu.Unlock()

	if vencidas > 0 && fn != nil {
		fn(vencidas)
	}
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	key := Key(token)
	now := m.now()
	m.mu.RLock()
	s, ok := m.sesiones[key]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	if s.Expirada(now) {
		m.expirar(key, now)
		return nil, ErrNotFound
	}
	cp := *s
	return &cp, nil
}

// Delete retorna true solo si había una sesión vigente para el token.
func (m *MemoryStore) Delete(_ context.Context, token string) (bool, error) {
	key := Key(token)
	now := m.now()
	m.mu.Lock()
	s, ok := m.sesiones[key]
	if !ok {
		m.mu.Unlock()
		return false, nil
	}
	if s.Expirada(now) {
		m.mu.Unlock()
		m.expirar(key, now)
		return false, nil
	}
	delete(m.sesiones, key)
	m.mu.Unlock()
	return true, nil
}

// Len es la cantidad de sesiones guardadas, vencidas o no.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sesiones)
}

// expirar descarta la sesión de key si sigue vencida; otro Save pudo reemplazarla.
func (m *MemoryStore) expirar(key string, now time.Time) {
	m.mu.Lock()
	s, ok := m.sesiones[key]
	if !ok || !s.Expirada(now) {
		m.mu.Unlock()
		return
	}
	delete(m.sesiones, key)
	fn := m.alExpirar
	m.mu.Unlock()
	if fn != nil {
		fn(1)
	}
}

func (m *MemoryStore) barrerLocked(now time.Time) int {
	n := 0
	for k, s := range m.sesiones {
		if s.Expirada(now) {
			delete(m.sesiones, k)
			n++
		}
	}
	return n
}
