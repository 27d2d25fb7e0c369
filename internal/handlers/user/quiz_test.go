package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvera_back_end/internal/quiz"
)

func TestGetQuizQuestions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/quiz/questions", GetQuizQuestions)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/quiz/questions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Questions []quiz.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Questions, len(quiz.Questions))
	assert.Equal(t, "skinType", body.Questions[0].ID)
	assert.Equal(t, "lifestyle", body.Questions[len(body.Questions)-1].ID)
}

func TestQuizSessionResponseShape(t *testing.T) {
	s := quiz.NewSession()
	resp := quizSessionResponse("abc", s)

	assert.Equal(t, "abc", resp["sessionId"])
	assert.Equal(t, 0, resp["step"])
	assert.Equal(t, false, resp["done"])
	assert.Equal(t, len(quiz.Questions), resp["total"])
	// la question courante n'est exposée que tant que le quiz est en cours
	require.Contains(t, resp, "question")

	s = completedQuiz(t)
	resp = quizSessionResponse("abc", s)
	assert.Equal(t, true, resp["done"])
	assert.NotContains(t, resp, "question")
}

func completedQuiz(t *testing.T) quiz.Session {
	t.Helper()
	s := quiz.NewSession()
	for range quiz.Questions {
		s = s.Answer(s.Current().ID, []string{s.Current().Options[0].Value})
		next, err := s.Advance()
		require.NoError(t, err)
		s = next
	}
	return s
}
