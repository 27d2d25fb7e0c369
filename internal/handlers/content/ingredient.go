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

const allIngredientsCacheKey = "ingredients:all"

func GetAllIngredients(c *gin.Context) {
	ctx := context.Background()

	var cached []models.Ingredient
	if cache.GetCachedList(ctx, allIngredientsCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT ingredient_id, name, description, benefits, suitable_for, created_at, updated_at FROM ingredients`).Iter()

	var ingredients []models.Ingredient
	var i models.Ingredient
	for iter.Scan(&i.ID, &i.Name, &i.Description, &i.Benefits, &i.SuitableFor, &i.CreatedAt, &i.UpdatedAt) {
		ingredients = append(ingredients, i)
		i = models.Ingredient{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture ingrédients: " + err.Error()})
		return
	}

	cache.SetCachedList(ctx, allIngredientsCacheKey, ingredients, cache.CatalogCacheTTL)

	c.JSON(http.StatusOK, ingredients)
}

func CreateIngredient(c *gin.Context) {
	var i models.Ingredient
	if err := c.ShouldBindJSON(&i); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if i.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'name' est obligatoire"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	i.ID = gocql.TimeUUID()
	now := time.Now()
	i.CreatedAt = &now
	i.UpdatedAt = &now

	query := `INSERT INTO ingredients (ingredient_id, name, description, benefits, suitable_for, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, i.ID, i.Name, i.Description, i.Benefits, i.SuitableFor, i.CreatedAt, i.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création ingrédient: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allIngredientsCacheKey)

	c.JSON(http.StatusCreated, i)
}

func UpdateIngredient(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID ingrédient invalide"})
		return
	}
	ingredientUUID := gocql.UUID(ingredientID)

	var input models.Ingredient
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing models.Ingredient
	if err := session.Query(`SELECT ingredient_id, created_at FROM ingredients WHERE ingredient_id = ?`, ingredientUUID).Scan(&existing.ID, &existing.CreatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ingrédient introuvable"})
		return
	}

	now := time.Now()
	input.ID = ingredientUUID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = &now

	query := `UPDATE ingredients SET name = ?, description = ?, benefits = ?, suitable_for = ?, updated_at = ?
	          WHERE ingredient_id = ?`

	if err := session.Query(query, input.Name, input.Description, input.Benefits, input.SuitableFor, input.UpdatedAt, ingredientUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour ingrédient: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allIngredientsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Ingrédient mis à jour", "ingredient": input})
}

func DeleteIngredient(c *gin.Context) {
	ingredientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID ingrédient invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM ingredients WHERE ingredient_id = ?`, gocql.UUID(ingredientID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression ingrédient: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allIngredientsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Ingrédient supprimé"})
}
