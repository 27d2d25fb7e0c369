package cart

import (
	"context"
	"sync"
)

// Registry garantit une seule instance de Store par clé. Sans lui, deux
// requêtes simultanées du même utilisateur construiraient chacune leur Store,
// chacune avec son propre mutex, et la dernière écriture du blob Redis
// écraserait silencieusement la mutation de l'autre. Toutes les requêtes
// d'une même clé passent donc par le même Store, réhydraté une seule fois.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get retourne le Store de la clé, en le créant à la première demande.
func (r *Registry) Get(ctx context.Context, storage Storage, key string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.stores[key]; ok {
		return s
	}

	s := NewStore(ctx, storage, key)
	r.stores[key] = s
	return s
}
