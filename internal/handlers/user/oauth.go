package user

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/markbates/goth/gothic"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/models"
	"luvera_back_end/internal/utils"
)

type ctxKey string

const ProviderKey ctxKey = "provider"

func BeginAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothic.BeginAuthHandler(c.Writer, c.Request)
}

// CallbackAuth termine le flux OAuth : l'utilisateur est créé à la première
// connexion, retrouvé ensuite, et repart avec un JWT Luvera.
func CallbackAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "aucun provider spécifié"})
		return
	}

	c.Request = c.Request.WithContext(
		context.WithValue(c.Request.Context(), ProviderKey, provider),
	)

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	var user models.User
	err = session.Query(`SELECT user_id, email, name, password, role, provider FROM users_by_email WHERE email = ?`, gothUser.Email).Scan(
		&user.ID, &user.Email, &user.Name, &user.Password, &user.Role, &user.Provider)
	if err != nil {
		// Première connexion : création du compte
		now := time.Now()
		user = models.User{
			ID:        gocql.TimeUUID().String(),
			Email:     gothUser.Email,
			Name:      gothUser.Name,
			Role:      "customer",
			Provider:  provider,
			CreatedAt: &now,
			UpdatedAt: &now,
		}
		if err := insertUser(session, user); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création utilisateur"})
			return
		}
		log.Printf("✅ Compte %s créé via %s", user.Email, provider)
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"provider": provider,
		"userId":   user.ID,
		"email":    user.Email,
		"name":     user.Name,
		"role":     user.Role,
	})
}
