package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"luvera_back_end/internal/database"
	"luvera_back_end/internal/quiz"
)

// Les sessions de quiz vivent dans Redis le temps d'un passage ; une session
// abandonnée expire d'elle-même.
const quizSessionTTL = 2 * time.Hour

func quizSessionKey(id string) string { return "quiz_session:" + id }

func loadQuizSession(ctx context.Context, id string) (quiz.Session, error) {
	data, err := database.Redis.Get(ctx, quizSessionKey(id)).Bytes()
	if err != nil {
		return quiz.Session{}, err
	}
	var s quiz.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return quiz.Session{}, err
	}
	if s.Answers == nil {
		s.Answers = quiz.Answers{}
	}
	return s, nil
}

func saveQuizSession(ctx context.Context, id string, s quiz.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return database.Redis.Set(ctx, quizSessionKey(id), data, quizSessionTTL).Err()
}

func quizSessionResponse(id string, s quiz.Session) gin.H {
	resp := gin.H{
		"sessionId": id,
		"step":      s.Step,
		"done":      s.Done,
		"answers":   s.Answers,
		"total":     len(quiz.Questions),
	}
	if !s.Done {
		resp["question"] = s.Current()
	}
	return resp
}

//
// 📋 GET /api/quiz/questions
//
func GetQuizQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": quiz.Questions})
}

//
// ✨ POST /api/quiz/session — démarre un passage
//
func StartQuizSession(c *gin.Context) {
	id := uuid.NewString()
	s := quiz.NewSession()

	if err := saveQuizSession(c.Request.Context(), id, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session quiz"})
		return
	}

	c.JSON(http.StatusCreated, quizSessionResponse(id, s))
}

func GetQuizSession(c *gin.Context) {
	id := c.Param("id")
	s, err := loadQuizSession(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session quiz introuvable"})
		return
	}
	c.JSON(http.StatusOK, quizSessionResponse(id, s))
}

//
// ✏️ POST /api/quiz/session/:id/answer
//
func AnswerQuizQuestion(c *gin.Context) {
	id := c.Param("id")

	var input struct {
		QuestionID string   `json:"questionId" binding:"required"`
		Values     []string `json:"values"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	s, err := loadQuizSession(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session quiz introuvable"})
		return
	}

	s = s.Answer(input.QuestionID, input.Values)
	if err := saveQuizSession(ctx, id, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session quiz"})
		return
	}

	c.JSON(http.StatusOK, quizSessionResponse(id, s))
}

//
// ➡️ POST /api/quiz/session/:id/advance
//
func AdvanceQuizSession(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	s, err := loadQuizSession(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session quiz introuvable"})
		return
	}

	next, err := s.Advance()
	if errors.Is(err, quiz.ErrUnanswered) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Répondez à la question avant de continuer"})
		return
	}

	if err := saveQuizSession(ctx, id, next); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session quiz"})
		return
	}

	resp := quizSessionResponse(id, next)
	if next.Done {
		resp["recommendations"] = quiz.Derive(next.Answers)
	}
	c.JSON(http.StatusOK, resp)
}

//
// ⬅️ POST /api/quiz/session/:id/previous
//
func PreviousQuizQuestion(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	s, err := loadQuizSession(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session quiz introuvable"})
		return
	}

	s = s.Previous()
	if err := saveQuizSession(ctx, id, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session quiz"})
		return
	}

	c.JSON(http.StatusOK, quizSessionResponse(id, s))
}

//
// 🔄 POST /api/quiz/session/:id/restart
//
func RestartQuizSession(c *gin.Context) {
	id := c.Param("id")

	ctx := c.Request.Context()
	s, err := loadQuizSession(ctx, id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session quiz introuvable"})
		return
	}

	s = s.Restart()
	if err := saveQuizSession(ctx, id, s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde session quiz"})
		return
	}

	c.JSON(http.StatusOK, quizSessionResponse(id, s))
}

//
// 🎁 POST /api/quiz/recommendations — dérivation directe depuis des réponses complètes
//
func GetRecommendations(c *gin.Context) {
	var input struct {
		Answers quiz.Answers `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	c.JSON(http.StatusOK, quiz.Derive(input.Answers))
}

//
// 🛒 POST /api/quiz/add-all — pousse le bundle recommandé dans le panier
//
func AddRecommendationsToCart(c *gin.Context) {
	userID := c.GetString("user_id")

	var input struct {
		Answers        quiz.Answers `json:"answers" binding:"required"`
		IsSubscription bool         `json:"isSubscription"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := c.Request.Context()
	bundle := quiz.Derive(input.Answers)

	store := userCart(ctx, userID)
	quiz.AddAllToCart(ctx, store, bundle.Products, input.IsSubscription, time.Now())

	c.JSON(http.StatusOK, cartResponse(store))
}
