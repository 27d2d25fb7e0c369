package quiz

import (
	"context"
	"fmt"
	"time"

	"luvera_back_end/internal/cart"
)

type RecommendedProduct struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Reason string  `json:"reason"`
	Price  float64 `json:"price"`
	Image  string  `json:"image"`
}

type Routine struct {
	Morning []string `json:"morning"`
	Evening []string `json:"evening"`
}

type Recommendation struct {
	SkinType          string               `json:"skinType"`
	PrimaryConcerns   []string             `json:"primaryConcerns"`
	Products          []RecommendedProduct `json:"products"`
	Routine           Routine              `json:"routine"`
	TotalValue        float64              `json:"totalValue"`
	SubscriptionPrice float64              `json:"subscriptionPrice"`
}

// Le bundle recommandé est pour l'instant fixe : la personnalisation ne joue
// que sur les libellés (type de peau, préoccupations). La sélection par
// réponses est un chantier ouvert côté produit, pas un choix d'implémentation.
var bundleProducts = []RecommendedProduct{
	{
		ID:     "1",
		Name:   "Gentle Foaming Cleanser",
		Type:   "Cleanser",
		Reason: "Perfect for your skin type and won't strip natural oils",
		Price:  28,
		Image:  "https://images.unsplash.com/photo-1556227703-ab57dbc6f839",
	},
	{
		ID:     "2",
		Name:   "Vitamin C Brightening Serum",
		Type:   "Treatment",
		Reason: "Addresses your concern with dark spots and dullness",
		Price:  45,
		Image:  "https://images.unsplash.com/photo-1745159338135-39f6b462b382",
	},
	{
		ID:     "3",
		Name:   "Hydrating Day Moisturizer SPF 30",
		Type:   "Moisturizer",
		Reason: "Provides hydration and essential sun protection",
		Price:  38,
		Image:  "https://images.unsplash.com/photo-1709551264885-06719a695b4c",
	},
	{
		ID:     "4",
		Name:   "Retinol Renewal Night Cream",
		Type:   "Night Treatment",
		Reason: "Helps with anti-aging and skin renewal while you sleep",
		Price:  52,
		Image:  "https://images.unsplash.com/photo-1598460880248-71ec6d2d582b",
	},
}

var bundleRoutine = Routine{
	Morning: []string{"Cleanser", "Serum", "Moisturizer with SPF"},
	Evening: []string{"Cleanser", "Night Treatment", "Night Moisturizer"},
}

// Prix du bundle : 28 + 45 + 38 + 52. Le prix abonnement est la remise de
// 15% appliquée à la somme, pas ligne par ligne comme dans le panier — un
// écart d'arrondi possible, assumé côté affichage des résultats.
const (
	bundleTotalValue        = 163
	bundleSubscriptionPrice = 138
)

// Derive calcule le bundle de recommandations depuis les réponses complètes.
// Déterministe et sans effet de bord.
func Derive(answers Answers) Recommendation {
	skinType := ""
	if v := answers["skinType"]; len(v) > 0 {
		skinType = v[0]
	}

	concerns := answers["concerns"]
	if len(concerns) > 3 {
		concerns = concerns[:3]
	}
	primary := make([]string, len(concerns))
	copy(primary, concerns)

	return Recommendation{
		SkinType:          skinType,
		PrimaryConcerns:   primary,
		Products:          bundleProducts,
		Routine:           bundleRoutine,
		TotalValue:        bundleTotalValue,
		SubscriptionPrice: bundleSubscriptionPrice,
	}
}

// CartAdder est la surface du panier dont le quiz a besoin : l'insertion
// directe, hors clé de fusion.
type CartAdder interface {
	InsertItem(ctx context.Context, item cart.Item)
}

// BundleItem construit la ligne panier d'un produit recommandé. L'identifiant
// synthétique (produit + mode + horodatage) échappe volontairement à la clé
// de fusion : un bundle issu du quiz arrive toujours en lignes neuves, il ne
// se fond jamais dans des lignes ajoutées à la main.
func BundleItem(p RecommendedProduct, isSubscription bool, now time.Time) cart.Item {
	tag := "one-time"
	frequency := ""
	if isSubscription {
		tag = "sub"
		frequency = cart.FrequencyMonthly
	}

	return cart.Item{
		ID:                    fmt.Sprintf("%s-%s-%d", p.ID, tag, now.UnixMilli()),
		ProductID:             p.ID,
		Name:                  p.Name,
		Price:                 p.Price,
		Image:                 p.Image,
		IsSubscription:        isSubscription,
		SubscriptionFrequency: frequency,
	}
}

// AddAllToCart pousse chaque produit du bundle dans le panier, en une ligne
// distincte par produit.
func AddAllToCart(ctx context.Context, adder CartAdder, products []RecommendedProduct, isSubscription bool, now time.Time) {
	for _, p := range products {
		adder.InsertItem(ctx, BundleItem(p, isSubscription, now))
	}
}
