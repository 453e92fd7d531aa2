package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/VishvKaneria/dynamic-active-lms/internal/middleware"
	"github.com/VishvKaneria/dynamic-active-lms/internal/models"
	"github.com/VishvKaneria/dynamic-active-lms/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Quiz{},
		&models.Question{},
		&models.Option{},
		&models.Submission{},
	))

	authService := services.NewAuthService(db, "test-secret")
	quizService := services.NewQuizService(db)
	scoringService := services.NewScoringService()
	submissionService := services.NewSubmissionService(db)
	analyticsService := services.NewAnalyticsService()
	// no API key: the AI collaborator stays disabled in tests
	insightsService := services.NewInsightsService("", "http://invalid", "none")

	authHandler := NewAuthHandler(authService)
	quizHandler := NewQuizHandler(quizService, submissionService)
	studentHandler := NewStudentHandler(quizService, scoringService, submissionService)
	insightsHandler := NewInsightsHandler(quizService, submissionService, analyticsService, insightsService)

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		teacher := api.Group("/teacher")
		teacher.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleTeacher))
		{
			teacher.POST("/quizzes", quizHandler.CreateQuiz)
			teacher.GET("/quizzes", quizHandler.ListQuizzes)
			teacher.GET("/quizzes/:id", quizHandler.GetQuiz)
			teacher.DELETE("/quizzes/:id", quizHandler.DeleteQuiz)
			teacher.GET("/quizzes/:id/submissions", quizHandler.ListSubmissions)
			teacher.GET("/quizzes/:id/insights", insightsHandler.GetInsights)
		}

		student := api.Group("/student")
		student.Use(middleware.JWTAuth(authService), middleware.RequireRole(models.RoleStudent))
		{
			student.GET("/quizzes", studentHandler.ListQuizzes)
			student.GET("/quizzes/:id", studentHandler.GetQuiz)
			student.POST("/quizzes/:id/submit", studentHandler.Submit)
			student.GET("/results", studentHandler.MyResults)
		}
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, r *gin.Engine, username, role string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"username": username,
		"password": "password123",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func sampleQuiz() gin.H {
	return gin.H{
		"subject": "Math",
		"title":   "Arithmetic Basics",
		"questions": []gin.H{
			{"q": "What is 2+2?", "options": []string{"3", "4", "5", "6"}, "answer": "4"},
			{"q": "What is 3*3?", "options": []string{"6", "9", "12", "3"}, "answer": "9"},
		},
	}
}

func TestQuizLifecycle(t *testing.T) {
	r := newTestRouter(t)
	teacherToken := register(t, r, "msjones", "teacher")
	studentToken := register(t, r, "alice", "student")

	// teacher creates a quiz
	w := do(t, r, http.MethodPost, "/api/v1/teacher/quizzes", teacherToken, sampleQuiz())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var quiz models.Quiz
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &quiz))
	require.NotZero(t, quiz.ID)

	// student sees the quiz without answers
	w = do(t, r, http.MethodGet, "/api/v1/student/quizzes/1", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `"answer"`)
	assert.Contains(t, w.Body.String(), "What is 2+2?")

	// student submits
	w = do(t, r, http.MethodPost, "/api/v1/student/quizzes/1/submit", studentToken, gin.H{
		"answers": []string{"4", "6"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var result SubmitResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.Attempt)
	assert.Equal(t, "alice", result.StudentID)
	require.Len(t, result.Feedback, 2)
	assert.True(t, result.Feedback[0].IsCorrect)
	assert.False(t, result.Feedback[1].IsCorrect)

	// a resubmission bumps the attempt number
	w = do(t, r, http.MethodPost, "/api/v1/student/quizzes/1/submit", studentToken, gin.H{
		"answers": []string{"4", "9"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 2, result.Attempt)
	assert.Equal(t, 2, result.Score)

	// teacher reads submissions
	w = do(t, r, http.MethodGet, "/api/v1/teacher/quizzes/1/submissions", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var subs SubmissionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &subs))
	assert.Equal(t, 2, subs.TotalSubmissions)
	assert.Equal(t, "Arithmetic Basics", subs.QuizTitle)

	// insights always include analytics; AI text stays empty when unconfigured
	w = do(t, r, http.MethodGet, "/api/v1/teacher/quizzes/1/insights", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var insights InsightsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &insights))
	assert.Equal(t, 1, insights.Analytics.ClassOverview.TotalStudents)
	assert.InDelta(t, 2.0, insights.Analytics.ClassOverview.AverageScore, 1e-9)
	assert.Empty(t, insights.AIInsights)

	// student sees own results
	w = do(t, r, http.MethodGet, "/api/v1/student/results", studentToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var mine []models.Submission
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 2)

	// delete, then everything about it is gone
	w = do(t, r, http.MethodDelete, "/api/v1/teacher/quizzes/1", teacherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodGet, "/api/v1/teacher/quizzes/1", teacherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/api/v1/teacher/quizzes/1", teacherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRoleEnforcement(t *testing.T) {
	r := newTestRouter(t)
	teacherToken := register(t, r, "msjones", "teacher")
	studentToken := register(t, r, "alice", "student")

	// students cannot create quizzes
	w := do(t, r, http.MethodPost, "/api/v1/teacher/quizzes", studentToken, sampleQuiz())
	assert.Equal(t, http.StatusForbidden, w.Code)

	// teachers cannot submit
	w = do(t, r, http.MethodPost, "/api/v1/teacher/quizzes", teacherToken, sampleQuiz())
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(t, r, http.MethodPost, "/api/v1/student/quizzes/1/submit", teacherToken, gin.H{"answers": []string{"4", "9"}})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// no token at all
	w = do(t, r, http.MethodGet, "/api/v1/student/quizzes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSubmit_Errors(t *testing.T) {
	r := newTestRouter(t)
	teacherToken := register(t, r, "msjones", "teacher")
	studentToken := register(t, r, "alice", "student")

	w := do(t, r, http.MethodPost, "/api/v1/teacher/quizzes", teacherToken, sampleQuiz())
	require.Equal(t, http.StatusCreated, w.Code)

	// unknown quiz
	w = do(t, r, http.MethodPost, "/api/v1/student/quizzes/99/submit", studentToken, gin.H{"answers": []string{"4"}})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// too many answers
	w = do(t, r, http.MethodPost, "/api/v1/student/quizzes/1/submit", studentToken, gin.H{
		"answers": []string{"4", "9", "extra"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateQuiz_ValidationSurfaced(t *testing.T) {
	r := newTestRouter(t)
	teacherToken := register(t, r, "msjones", "teacher")

	bad := sampleQuiz()
	bad["questions"] = []gin.H{
		{"q": "What is 2+2?", "options": []string{"3", "4"}, "answer": "5"},
	}

	w := do(t, r, http.MethodPost, "/api/v1/teacher/quizzes", teacherToken, bad)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "must be one of the options")
}
