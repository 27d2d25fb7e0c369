package product

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
)

// CreateReview crée un avis sur un produit. L'avis attend l'approbation
// d'un administrateur avant d'apparaître publiquement.
func CreateReview(c *gin.Context) {
	userID := c.GetString("user_id")
	productID := c.Param("id")

	var req struct {
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment" binding:"required,min=10,max=500"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides", "details": err.Error()})
		return
	}

	productUUID, err := uuid.Parse(productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifier que le produit existe
	var existingID gocql.UUID
	if err := session.Query("SELECT product_id FROM products WHERE product_id = ?", gocql.UUID(productUUID)).Scan(&existingID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	// Récupérer le nom de l'utilisateur
	userName := "Utilisateur"
	if usersSession, err := database.GetUsersSession(); err == nil {
		var name string
		if err := usersSession.Query("SELECT name FROM users WHERE user_id = ?", userID).Scan(&name); err == nil && name != "" {
			userName = name
		}
	}

	reviewID := gocql.TimeUUID()
	now := time.Now()

	err = session.Query(`
		INSERT INTO reviews (review_id, product_id, user_id, user_name, rating, comment, approved, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, reviewID, gocql.UUID(productUUID), userID, userName, req.Rating, req.Comment, false, now, now).Exec()

	if err != nil {
		log.Printf("❌ Erreur création avis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création avis"})
		return
	}

	log.Printf("⭐ Avis créé: %s pour produit %s (note: %d/5, en attente de modération)", reviewID, productID, req.Rating)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Avis créé, en attente de modération",
		"review": models.Review{
			ID:        reviewID,
			ProductID: gocql.UUID(productUUID),
			UserID:    userID,
			UserName:  userName,
			Rating:    req.Rating,
			Comment:   req.Comment,
			Approved:  false,
			CreatedAt: &now,
			UpdatedAt: &now,
		},
	})
}

// GetProductReviews liste les avis approuvés d'un produit
func GetProductReviews(c *gin.Context) {
	productUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT review_id, product_id, user_id, user_name, rating, comment, approved, created_at, updated_at
	                       FROM reviews WHERE product_id = ? ALLOW FILTERING`, gocql.UUID(productUUID)).Iter()

	reviews := []models.Review{}
	var r models.Review
	for iter.Scan(&r.ID, &r.ProductID, &r.UserID, &r.UserName, &r.Rating, &r.Comment, &r.Approved, &r.CreatedAt, &r.UpdatedAt) {
		if r.Approved {
			reviews = append(reviews, r)
		}
		r = models.Review{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}
