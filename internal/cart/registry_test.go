package cart

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistrySharesStorePerKey(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	reg := NewRegistry()

	// deux requêtes simultanées du même utilisateur obtiennent le même Store
	s1 := reg.Get(ctx, storage, "cart:u1")
	s2 := reg.Get(ctx, storage, "cart:u1")
	assert.Same(t, s1, s2)

	s1.AddItem(ctx, serum("a"))
	cream := Item{ID: "b", ProductID: "P2", Name: "Hydrating Night Cream", Price: 38}
	s2.AddItem(ctx, cream)

	// aucune des deux mutations n'est perdue, ni en mémoire ni dans le slot
	assert.Len(t, s1.Items(), 2)
	rehydrated := NewStore(ctx, storage, "cart:u1")
	require.Len(t, rehydrated.Items(), 2)
}

func TestRegistryIsolatesKeys(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	reg := NewRegistry()

	s1 := reg.Get(ctx, storage, "cart:u1")
	s2 := reg.Get(ctx, storage, "cart:u2")
	assert.NotSame(t, s1, s2)

	s1.AddItem(ctx, serum("a"))
	assert.Empty(t, s2.Items())
}

func TestRegistryConcurrentMutations(t *testing.T) {
	ctx := context.Background()
	storage := newMemoryStorage()
	reg := NewRegistry()

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			s := reg.Get(ctx, storage, "cart:u1")
			s.AddItem(ctx, Item{
				ID:        fmt.Sprintf("ligne-%d", n),
				ProductID: fmt.Sprintf("P%d", n),
				Name:      "Produit",
				Price:     10,
			})
		}(i)
	}
	wg.Wait()

	s := reg.Get(ctx, storage, "cart:u1")
	assert.Len(t, s.Items(), writers)
	assert.Equal(t, writers, s.TotalItems())

	rehydrated := NewStore(ctx, storage, "cart:u1")
	assert.Len(t, rehydrated.Items(), writers)
}
