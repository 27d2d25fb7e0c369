package cache

import (
	"context"
	"encoding/json"
	"time"

	"luvera_back_end/internal/database"
)

const (
	CatalogCacheTTL = time.Hour
	ProductCacheTTL = 10 * time.Minute
)

// GetCachedList récupère une liste mise en cache (products:all, blogs:all, ...)
func GetCachedList(ctx context.Context, key string, out interface{}) bool {
	data, err := database.Redis.Get(ctx, key).Result()
	if err != nil || data == "" {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

// SetCachedList met une liste en cache, best-effort
func SetCachedList(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	if data, err := json.Marshal(value); err == nil {
		database.Redis.Set(ctx, key, data, ttl)
	}
}

// InvalidateCatalogCache invalide les listes après une écriture admin
func InvalidateCatalogCache(ctx context.Context, keys ...string) {
	if len(keys) > 0 {
		database.Redis.Del(ctx, keys...)
	}
}
