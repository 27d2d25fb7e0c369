package admin

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/seed"
)

//
// 🩺 GET /api/system/status
//
func GetSystemStatus(c *gin.Context) {
	ctx := c.Request.Context()
	status := gin.H{"status": "ok"}
	services := gin.H{}

	// ScyllaDB + comptages catalogue
	if session, err := database.GetCatalogSession(); err != nil {
		services["scylladb"] = "down"
		status["status"] = "degraded"
	} else {
		services["scylladb"] = "up"

		counts := gin.H{}
		for name, table := range map[string]string{
			"products":    "products",
			"blogs":       "blogs",
			"offers":      "offers",
			"ingredients": "ingredients",
			"reviews":     "reviews",
		} {
			var n int
			if err := session.Query("SELECT COUNT(*) FROM " + table).Scan(&n); err == nil {
				counts[name] = n
			}
		}
		status["counts"] = counts
	}

	// Redis
	if err := database.Redis.Ping(ctx).Err(); err != nil {
		services["redis"] = "down"
		status["status"] = "degraded"
	} else {
		services["redis"] = "up"
	}

	// Elasticsearch
	if s := elasticStatus(); s != "up" {
		services["elasticsearch"] = s
		status["status"] = "degraded"
	} else {
		services["elasticsearch"] = "up"
	}

	// MinIO
	bucket := os.Getenv("MINIO_BUCKET")
	if bucket == "" {
		bucket = "luvera-media"
	}
	if exists, err := database.MinIO.BucketExists(ctx, bucket); err != nil || !exists {
		services["minio"] = "down"
		status["status"] = "degraded"
	} else {
		services["minio"] = "up"
	}

	status["services"] = services
	c.JSON(http.StatusOK, status)
}

// elasticStatus ping le cluster. Le body est fermé dans tous les cas,
// réponse d'erreur comprise.
func elasticStatus() string {
	res, err := database.Elastic.Ping()
	if err != nil {
		return "down"
	}
	defer res.Body.Close()

	if res.IsError() {
		return "down"
	}
	return "up"
}

//
// 🌱 POST /api/system/init (admin) — amorce les données d'exemple
//
func InitSampleData(c *gin.Context) {
	result, err := seed.Run()
	if err != nil {
		log.Printf("❌ Erreur amorçage données: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur amorçage données: " + err.Error()})
		return
	}

	message := "Données d'exemple insérées"
	if result.Skipped {
		message = "Données déjà présentes, amorçage ignoré"
	}

	c.JSON(http.StatusOK, gin.H{"message": message, "result": result})
}
