package user

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
)

func GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var u models.User
	err = session.Query(`SELECT user_id, email, name, role, provider, skin_type, skin_concerns, created_at, updated_at
	                     FROM users WHERE user_id = ?`, userID).Scan(
		&u.ID, &u.Email, &u.Name, &u.Role, &u.Provider, &u.SkinType, &u.SkinConcerns, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	c.JSON(http.StatusOK, u)
}

// UpdateProfile met à jour le nom et le profil peau (résultats du quiz inclus)
func UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Name         string   `json:"name"`
		SkinType     string   `json:"skin_type"`
		SkinConcerns []string `json:"skin_concerns"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var u models.User
	err = session.Query(`SELECT user_id, email, name, skin_type, skin_concerns FROM users WHERE user_id = ?`, userID).Scan(
		&u.ID, &u.Email, &u.Name, &u.SkinType, &u.SkinConcerns)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profil introuvable"})
		return
	}

	if input.Name != "" {
		u.Name = input.Name
	}
	if input.SkinType != "" {
		u.SkinType = input.SkinType
	}
	if input.SkinConcerns != nil {
		u.SkinConcerns = input.SkinConcerns
	}

	now := time.Now()
	err = session.Query(`UPDATE users SET name = ?, skin_type = ?, skin_concerns = ?, updated_at = ? WHERE user_id = ?`,
		u.Name, u.SkinType, u.SkinConcerns, now, userID).Exec()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour profil"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profil mis à jour"})
}
