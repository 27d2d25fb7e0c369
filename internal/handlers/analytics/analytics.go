package analytics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"luvera_back_end/internal/database"
)

// Compteurs journaliers par page, pas de profil visiteur.
const pageViewTTL = 90 * 24 * time.Hour

func pageViewKey(page, day string) string {
	return "analytics:page_views:" + page + ":" + day
}

//
// 📈 POST /api/analytics/page-view
//
func TrackPageView(c *gin.Context) {
	var input struct {
		Page string `json:"page" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	page := strings.Trim(input.Page, "/")
	if page == "" {
		page = "home"
	}

	ctx := c.Request.Context()
	key := pageViewKey(page, time.Now().Format("2006-01-02"))

	count, err := database.Redis.Incr(ctx, key).Result()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur enregistrement vue"})
		return
	}
	if count == 1 {
		database.Redis.Expire(ctx, key, pageViewTTL)
	}

	c.JSON(http.StatusOK, gin.H{"page": page, "views": count})
}

//
// 📊 GET /api/analytics/dashboard (admin)
//
func Dashboard(c *gin.Context) {
	ctx := c.Request.Context()

	days := 7
	if d, err := strconv.Atoi(c.Query("days")); err == nil && d > 0 && d <= 90 {
		days = d
	}

	since := time.Now().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	perPage := map[string]int64{}
	perDay := map[string]int64{}
	var total int64

	iter := database.Redis.Scan(ctx, 0, "analytics:page_views:*", 200).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()

		// analytics:page_views:<page>:<jour>
		parts := strings.Split(key, ":")
		if len(parts) < 4 {
			continue
		}
		day := parts[len(parts)-1]
		page := strings.Join(parts[2:len(parts)-1], ":")
		if day < since {
			continue
		}

		views, err := database.Redis.Get(ctx, key).Int64()
		if err != nil {
			continue
		}

		perPage[page] += views
		perDay[day] += views
		total += views
	}
	if err := iter.Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture analytics"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":       days,
		"totalViews": total,
		"perPage":    perPage,
		"perDay":     perDay,
	})
}
