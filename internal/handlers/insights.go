package handlers

import (
	"net/http"
	"strconv"

	"github.com/VishvKaneria/dynamic-active-lms/internal/services"

	"github.com/gin-gonic/gin"
)

type InsightsHandler struct {
	quizService       *services.QuizService
	submissionService *services.SubmissionService
	analyticsService  *services.AnalyticsService
	insightsService   *services.InsightsService
}

func NewInsightsHandler(quizService *services.QuizService, submissionService *services.SubmissionService, analyticsService *services.AnalyticsService, insightsService *services.InsightsService) *InsightsHandler {
	return &InsightsHandler{
		quizService:       quizService,
		submissionService: submissionService,
		analyticsService:  analyticsService,
		insightsService:   insightsService,
	}
}

type InsightsResponse struct {
	QuizID     uint            `json:"quiz_id"`
	QuizTitle  string          `json:"quiz_title"`
	Analytics  services.Report `json:"analytics"`
	AIInsights string          `json:"ai_insights"`
}

// GetInsights godoc
// @Summary      Quiz analytics with AI insights
// @Description  Aggregated class and per-question statistics plus an AI-written summary. Analytics are always returned even when the AI backend is unconfigured or down.
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} InsightsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes/{id}/insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuizOwned(uint(quizID), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	subs, err := h.submissionService.ListForQuiz(quiz.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	report := h.analyticsService.Analyze(quiz, subs)

	aiText := ""
	if h.insightsService.IsAvailable() && len(subs) > 0 {
		// a failed AI call must not block the analytics
		if text, err := h.insightsService.GenerateInsights(quiz, report); err == nil {
			aiText = text
		}
	}

	c.JSON(http.StatusOK, InsightsResponse{
		QuizID:     quiz.ID,
		QuizTitle:  quiz.Title,
		Analytics:  report,
		AIInsights: aiText,
	})
}
