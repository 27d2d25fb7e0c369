package content

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"luvera_back_end/internal/cache"
	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
)

const allOffersCacheKey = "offers:all"

func loadOffers(c *gin.Context) ([]models.Offer, bool) {
	ctx := context.Background()

	var cached []models.Offer
	if cache.GetCachedList(ctx, allOffersCacheKey, &cached) {
		return cached, true
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return nil, false
	}

	iter := session.Query(`SELECT offer_id, title, description, discount, image_url, active, start_date, end_date, button_text, button_link, created_at, updated_at FROM offers`).Iter()

	var offers []models.Offer
	var o models.Offer
	for iter.Scan(&o.ID, &o.Title, &o.Description, &o.Discount, &o.ImageURL, &o.Active, &o.StartDate, &o.EndDate, &o.ButtonText, &o.ButtonLink, &o.CreatedAt, &o.UpdatedAt) {
		offers = append(offers, o)
		o = models.Offer{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture offres: " + err.Error()})
		return nil, false
	}

	cache.SetCachedList(ctx, allOffersCacheKey, offers, cache.CatalogCacheTTL)
	return offers, true
}

func GetAllOffers(c *gin.Context) {
	offers, ok := loadOffers(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, offers)
}

// GetActiveOffers retourne les offres actives dans leur fenêtre de validité
// (bandeau promotionnel du storefront)
func GetActiveOffers(c *gin.Context) {
	offers, ok := loadOffers(c)
	if !ok {
		return
	}

	now := time.Now()
	active := []models.Offer{}
	for _, o := range offers {
		if o.IsCurrentlyActive(now) {
			active = append(active, o)
		}
	}

	c.JSON(http.StatusOK, active)
}

func CreateOffer(c *gin.Context) {
	var o models.Offer
	if err := c.ShouldBindJSON(&o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if o.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'title' est obligatoire"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	o.ID = gocql.TimeUUID()
	now := time.Now()
	o.CreatedAt = &now
	o.UpdatedAt = &now

	query := `INSERT INTO offers (offer_id, title, description, discount, image_url, active, start_date, end_date, button_text, button_link, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, o.ID, o.Title, o.Description, o.Discount, o.ImageURL, o.Active, o.StartDate, o.EndDate, o.ButtonText, o.ButtonLink, o.CreatedAt, o.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création offre: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allOffersCacheKey)

	c.JSON(http.StatusCreated, o)
}

func UpdateOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID offre invalide"})
		return
	}
	offerUUID := gocql.UUID(offerID)

	var input models.Offer
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing models.Offer
	if err := session.Query(`SELECT offer_id, created_at FROM offers WHERE offer_id = ?`, offerUUID).Scan(&existing.ID, &existing.CreatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offre introuvable"})
		return
	}

	now := time.Now()
	input.ID = offerUUID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = &now

	query := `UPDATE offers SET title = ?, description = ?, discount = ?, image_url = ?, active = ?, start_date = ?, end_date = ?, button_text = ?, button_link = ?, updated_at = ?
	          WHERE offer_id = ?`

	if err := session.Query(query, input.Title, input.Description, input.Discount, input.ImageURL, input.Active, input.StartDate, input.EndDate, input.ButtonText, input.ButtonLink, input.UpdatedAt, offerUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour offre: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allOffersCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Offre mise à jour", "offer": input})
}

func DeleteOffer(c *gin.Context) {
	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID offre invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM offers WHERE offer_id = ?`, gocql.UUID(offerID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression offre: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allOffersCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Offre supprimée"})
}
