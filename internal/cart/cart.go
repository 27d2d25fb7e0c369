package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"
)

// SubscriptionDiscount est la remise abonnement fixe de 15%
const SubscriptionDiscount = 0.85

// Fréquences d'abonnement acceptées
const (
	FrequencyMonthly   = "monthly"
	FrequencyBiMonthly = "bi-monthly"
	FrequencyQuarterly = "quarterly"
)

type Item struct {
	ID                    string  `json:"id"`
	ProductID             string  `json:"productId"`
	Name                  string  `json:"name"`
	Price                 float64 `json:"price"`
	Image                 string  `json:"image"`
	Quantity              int     `json:"quantity"`
	Variant               string  `json:"variant,omitempty"`
	IsSubscription        bool    `json:"isSubscription,omitempty"`
	SubscriptionFrequency string  `json:"subscriptionFrequency,omitempty"`
}

// sameConfiguration compare deux items sur le triplet (produit, variante, abonnement).
// C'est la clé de fusion du panier : deux lignes identiques sur ce triplet
// ne doivent jamais coexister.
func sameConfiguration(a, b Item) bool {
	return a.ProductID == b.ProductID &&
		a.Variant == b.Variant &&
		a.IsSubscription == b.IsSubscription
}

// Storage est le port de persistance du panier : la collection entière est
// sérialisée sous une seule clé, lue une fois à la construction et réécrite
// après chaque mutation.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Store maintient la liste des lignes du panier pour une clé donnée.
// Les mutations sont sérialisées par un mutex : les handlers Gin tournent
// en parallèle, contrairement au fil unique d'un navigateur.
type Store struct {
	mu      sync.Mutex
	key     string
	storage Storage
	items   []Item
}

// NewStore crée un panier et le réhydrate depuis le stockage.
// Une clé absente ou un contenu illisible donne un panier vide.
func NewStore(ctx context.Context, storage Storage, key string) *Store {
	s := &Store{key: key, storage: storage}

	data, err := storage.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return s
	}
	if err := json.Unmarshal(data, &s.items); err != nil {
		log.Printf("⚠️ Panier %s illisible, on repart à vide: %v", key, err)
		s.items = nil
	}
	return s
}

// AddItem ajoute une configuration au panier. Si une ligne existante porte le
// même triplet (produit, variante, abonnement), sa quantité est incrémentée
// de 1 et le candidat est ignoré. Sinon le candidat est ajouté avec
// quantité 1, en gardant l'identifiant fourni par l'appelant.
func (s *Store) AddItem(ctx context.Context, candidate Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if sameConfiguration(s.items[i], candidate) {
			s.items[i].Quantity++
			s.persist(ctx)
			return
		}
	}

	candidate.Quantity = 1
	s.items = append(s.items, candidate)
	s.persist(ctx)
}

// InsertItem ajoute une ligne neuve sans passer par la clé de fusion :
// c'est la porte d'entrée des bundles du quiz, dont les lignes ne doivent
// jamais se fondre dans des lignes ajoutées à la main. L'appelant garantit
// l'unicité de l'identifiant.
func (s *Store) InsertItem(ctx context.Context, item Item) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Quantity = 1
	s.items = append(s.items, item)
	s.persist(ctx)
}

// RemoveItem supprime la ligne dont l'identifiant correspond.
// Retourne false si aucune ligne ne correspond (pas une erreur).
func (s *Store) RemoveItem(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.removeLocked(ctx, id)
}

func (s *Store) removeLocked(ctx context.Context, id string) bool {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

// UpdateQuantity fixe la quantité d'une ligne (valeur absolue, pas un delta).
// Une quantité ≤ 0 supprime la ligne. Retourne false si l'identifiant est
// inconnu.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return s.removeLocked(ctx, id)
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			return true
		}
	}
	return false
}

// ClearCart vide le panier sans condition.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.persist(ctx)
}

// TotalPrice retourne le total du panier, remise abonnement de 15% appliquée
// ligne par ligne.
func (s *Store) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0.0
	for _, item := range s.items {
		price := item.Price
		if item.IsSubscription {
			price *= SubscriptionDiscount
		}
		total += price * float64(item.Quantity)
	}
	return total
}

// TotalItems retourne la somme des quantités.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Items retourne une copie de la collection courante.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// persist réécrit la collection entière dans le stockage. Best-effort :
// un échec est loggé mais jamais remonté à l'appelant, la mutation en
// mémoire reste acquise.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("⚠️ Sérialisation panier %s impossible: %v", s.key, err)
		return
	}
	if err := s.storage.Set(ctx, s.key, data); err != nil {
		log.Printf("⚠️ Sauvegarde panier %s échouée: %v", s.key, err)
	}
}
