package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const prefijoRedis = "condominios:sesion:"

// RedisStore guarda las sesiones en Redis para compartirlas entre réplicas del MID.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisStore crea el store sobre un cliente ya configurado.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, now: time.Now}
}

func (r *RedisStore) Save(ctx context.Context, s *Session) error {
	ttl := TTL(s, r.now(), r.ttl)
	if ttl <= 0 && !s.ExpiraEn.IsZero() {
		return fmt.Errorf("token expirado")
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, prefijoRedis+Key(s.Token), data, ttl).Err()
}

func (r *RedisStore) Get(ctx context.Context, token string) (*Session, error) {
	data, err := r.client.Get(ctx, prefijoRedis+Key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("sesión corrupta: %w", err)
	}
	if s.Expirada(r.now()) {
		return nil, ErrNotFound
	}
	return &s, nil
}

// Delete usa el conteo de DEL; una llave que Redis ya venció por TTL cuenta como no eliminada.
func (r *RedisStore) Delete(ctx context.Context, token string) (bool, error) {
	n, err := r.client.Del(ctx, prefijoRedis+Key(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
