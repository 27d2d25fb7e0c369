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

const allBlogsCacheKey = "blogs:all"

func GetAllBlogs(c *gin.Context) {
	ctx := context.Background()

	var cached []models.BlogPost
	if cache.GetCachedList(ctx, allBlogsCacheKey, &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT blog_id, title, content, excerpt, author, published, publish_date, tags, created_at, updated_at FROM blogs`).Iter()

	var blogs []models.BlogPost
	var b models.BlogPost
	for iter.Scan(&b.ID, &b.Title, &b.Content, &b.Excerpt, &b.Author, &b.Published, &b.PublishDate, &b.Tags, &b.CreatedAt, &b.UpdatedAt) {
		blogs = append(blogs, b)
		b = models.BlogPost{}
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture articles: " + err.Error()})
		return
	}

	cache.SetCachedList(ctx, allBlogsCacheKey, blogs, cache.CatalogCacheTTL)

	c.JSON(http.StatusOK, blogs)
}

func CreateBlog(c *gin.Context) {
	var b models.BlogPost
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if b.Title == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Le champ 'title' est obligatoire"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	b.ID = gocql.TimeUUID()
	now := time.Now()
	b.CreatedAt = &now
	b.UpdatedAt = &now
	if b.PublishDate == "" {
		b.PublishDate = now.Format("2006-01-02")
	}

	query := `INSERT INTO blogs (blog_id, title, content, excerpt, author, published, publish_date, tags, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, b.ID, b.Title, b.Content, b.Excerpt, b.Author, b.Published, b.PublishDate, b.Tags, b.CreatedAt, b.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création article: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allBlogsCacheKey)

	c.JSON(http.StatusCreated, b)
}

func UpdateBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}
	blogUUID := gocql.UUID(blogID)

	var input models.BlogPost
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var existing models.BlogPost
	if err := session.Query(`SELECT blog_id, created_at FROM blogs WHERE blog_id = ?`, blogUUID).Scan(&existing.ID, &existing.CreatedAt); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article introuvable"})
		return
	}

	now := time.Now()
	input.ID = blogUUID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = &now

	query := `UPDATE blogs SET title = ?, content = ?, excerpt = ?, author = ?, published = ?, publish_date = ?, tags = ?, updated_at = ?
	          WHERE blog_id = ?`

	if err := session.Query(query, input.Title, input.Content, input.Excerpt, input.Author, input.Published, input.PublishDate, input.Tags, input.UpdatedAt, blogUUID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour article: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allBlogsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Article mis à jour", "blog": input})
}

func DeleteBlog(c *gin.Context) {
	blogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID article invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM blogs WHERE blog_id = ?`, gocql.UUID(blogID)).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression article: " + err.Error()})
		return
	}

	cache.InvalidateCatalogCache(context.Background(), allBlogsCacheKey)

	c.JSON(http.StatusOK, gin.H{"message": "Article supprimé"})
}
