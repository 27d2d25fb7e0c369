package product

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/google/uuid"

	"luvera_back_end/internal/cache"
	"luvera_back_end/internal/database"
	"luvera_back_end/internal/services"
)

// UploadProductImage reçoit une image multipart, la pousse dans MinIO et
// ajoute son URL au produit
func UploadProductImage(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}
	productUUID := gocql.UUID(productID)

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fichier 'image' manquant"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var imageURLs []string
	if err := session.Query(`SELECT image_urls FROM products WHERE product_id = ?`, productUUID).Scan(&imageURLs); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	url, err := services.UploadProductImage(c.Request.Context(), productID.String(), file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur upload image: " + err.Error()})
		return
	}

	imageURLs = append(imageURLs, url)
	if err := session.Query(`UPDATE products SET image_urls = ? WHERE product_id = ?`, imageURLs, productUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allProductsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Image ajoutée", "url": url})
}
