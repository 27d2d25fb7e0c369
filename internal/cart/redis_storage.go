package cart

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// CartTTL : même durée de vie que les paniers invités côté front (30 jours)
const CartTTL = 30 * 24 * time.Hour

// RedisStorage persiste le panier comme un blob JSON sous une seule clé Redis.
type RedisStorage struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{Client: client, TTL: CartTTL}
}

func (r *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := r.Client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // clé absente = panier vide
	}
	return data, err
}

func (r *RedisStorage) Set(ctx context.Context, key string, data []byte) error {
	return r.Client.Set(ctx, key, data, r.TTL).Err()
}
