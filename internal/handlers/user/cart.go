package user

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luvera_back_end/internal/cart"
	"luvera_back_end/internal/database"
)

// carts partage un Store unique par utilisateur : les requêtes simultanées
// d'un même panier se sérialisent sur le même mutex au lieu de se réécrire
// l'une l'autre via Redis.
var carts = cart.NewRegistry()

func userCart(ctx context.Context, userID string) *cart.Store {
	storage := cart.NewRedisStorage(database.Redis)
	return carts.Get(ctx, storage, "cart:"+userID)
}

func cartResponse(s *cart.Store) gin.H {
	return gin.H{
		"items":      s.Items(),
		"totalPrice": s.TotalPrice(),
		"totalItems": s.TotalItems(),
	}
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	userID := c.GetString("user_id")
	store := userCart(c.Request.Context(), userID)
	c.JSON(http.StatusOK, cartResponse(store))
}

//
// 🟢 POST /api/cart/items
//
func AddToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		ProductID             string  `json:"productId" binding:"required"`
		Name                  string  `json:"name" binding:"required"`
		Price                 float64 `json:"price" binding:"required,gt=0"`
		Image                 string  `json:"image"`
		Variant               string  `json:"variant"`
		IsSubscription        bool    `json:"isSubscription"`
		SubscriptionFrequency string  `json:"subscriptionFrequency"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if input.IsSubscription && input.SubscriptionFrequency == "" {
		input.SubscriptionFrequency = cart.FrequencyMonthly
	}

	ctx := c.Request.Context()
	store := userCart(ctx, userID)
	store.AddItem(ctx, cart.Item{
		ID:                    uuid.NewString(),
		ProductID:             input.ProductID,
		Name:                  input.Name,
		Price:                 input.Price,
		Image:                 input.Image,
		Variant:               input.Variant,
		IsSubscription:        input.IsSubscription,
		SubscriptionFrequency: input.SubscriptionFrequency,
	})

	c.JSON(http.StatusOK, cartResponse(store))
}

//
// 🔁 PUT /api/cart/items/:id
//
func UpdateCartItem(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("id")

	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	store := userCart(ctx, userID)
	// id inconnu = no-op silencieux, pas une erreur
	store.UpdateQuantity(ctx, itemID, input.Quantity)

	c.JSON(http.StatusOK, cartResponse(store))
}

//
// ❌ DELETE /api/cart/items/:id
//
func RemoveFromCart(c *gin.Context) {
	userID := c.GetString("user_id")
	itemID := c.Param("id")

	ctx := c.Request.Context()
	store := userCart(ctx, userID)
	store.RemoveItem(ctx, itemID)

	c.JSON(http.StatusOK, cartResponse(store))
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	userID := c.GetString("user_id")

	ctx := c.Request.Context()
	store := userCart(ctx, userID)
	store.ClearCart(ctx)

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
