package admin

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
)

// GetAllReviews liste tous les avis, approuvés ou non, pour la modération
func GetAllReviews(c *gin.Context) {
	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT review_id, product_id, user_id, user_name, rating, comment, approved, created_at, updated_at
	                       FROM reviews`).Iter()

	reviews := []models.Review{}
	var r models.Review
	for iter.Scan(&r.ID, &r.ProductID, &r.UserID, &r.UserName, &r.Rating, &r.Comment, &r.Approved, &r.CreatedAt, &r.UpdatedAt) {
		reviews = append(reviews, r)
		r = models.Review{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture avis: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, reviews)
}

//
// ✅ PUT /api/admin/reviews/:id/approve
//
func ApproveReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID avis invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing gocql.UUID
	if err := session.Query("SELECT review_id FROM reviews WHERE review_id = ?", gocql.UUID(reviewUUID)).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Avis introuvable"})
		return
	}

	if err := session.Query("UPDATE reviews SET approved = true, updated_at = toTimestamp(now()) WHERE review_id = ?",
		gocql.UUID(reviewUUID)).Exec(); err != nil {
		log.Printf("❌ Erreur approbation avis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur approbation avis"})
		return
	}

	log.Printf("✅ Avis approuvé: %s", reviewUUID)
	c.JSON(http.StatusOK, gin.H{"message": "Avis approuvé"})
}

//
// 🗑️ DELETE /api/admin/reviews/:id
//
func DeleteReview(c *gin.Context) {
	reviewUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID avis invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query("DELETE FROM reviews WHERE review_id = ?", gocql.UUID(reviewUUID)).Exec(); err != nil {
		log.Printf("❌ Erreur suppression avis: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression avis"})
		return
	}

	log.Printf("🗑️ Avis supprimé: %s", reviewUUID)
	c.JSON(http.StatusOK, gin.H{"message": "Avis supprimé"})
}
