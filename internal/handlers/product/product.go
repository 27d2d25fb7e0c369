package product

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
	"luvera_back_end/internal/services"
)

const allProductsCacheKey = "products:all"

func CreateProduct(c *gin.Context) {
	var p models.Product

	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	query := `INSERT INTO products (product_id, name, description, price, category, image_urls, tags, in_stock, featured, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Description, p.Price, p.Category, p.ImageURLs, p.Tags, p.InStock, p.Featured, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	cache.InvalidateCatalogCache(context.Background(), allProductsCacheKey)

	c.JSON(http.StatusCreated, p)
}

func GetAllProducts(c *gin.Context) {
	ctx := context.Background()

	// ✅ Vérifie le cache Redis
	var cached []models.Product
	if cache.GetCachedList(ctx, allProductsCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT product_id, name, description, price, category, image_urls, tags, in_stock, featured, created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURLs, &p.Tags, &p.InStock, &p.Featured, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture produits: " + err.Error()})
		return
	}

	cache.SetCachedList(ctx, allProductsCacheKey, products, cache.CatalogCacheTTL)

	c.JSON(http.StatusOK, products)
}

func GetProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var p models.Product
	err = session.Query(`SELECT product_id, name, description, price, category, image_urls, tags, in_stock, featured, created_at, updated_at
	                     FROM products WHERE product_id = ?`, gocql.UUID(productID)).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.ImageURLs, &p.Tags, &p.InStock, &p.Featured, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, p)
}

func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}
	productUUID := gocql.UUID(productID)

	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifie que le produit existe et récupère sa date de création
	var p models.Product
	err = session.Query(`SELECT product_id, created_at FROM products WHERE product_id = ?`, productUUID).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	now := time.Now()
	input.ID = productUUID
	input.CreatedAt = p.CreatedAt
	input.UpdatedAt = &now

	query := `UPDATE products SET name = ?, description = ?, price = ?, category = ?, image_urls = ?, tags = ?, in_stock = ?, featured = ?, updated_at = ?
	          WHERE product_id = ?`

	if err := session.Query(query, input.Name, input.Description, input.Price, input.Category, input.ImageURLs, input.Tags, input.InStock, input.Featured, input.UpdatedAt, productUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	go services.IndexProduct(input)
	cache.InvalidateCatalogCache(context.Background(), allProductsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Produit mis à jour", "product": input})
}

func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, gocql.UUID(productID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit: " + err.Error()})
		return
	}

	go services.RemoveProductFromIndex(productID.String())
	cache.InvalidateCatalogCache(context.Background(), allProductsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
