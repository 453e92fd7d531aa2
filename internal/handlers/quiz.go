package handlers

import (
	"net/http"
	"strconv"

	"github.com/VishvKaneria/dynamic-active-lms/internal/services"

	"github.com/gin-gonic/gin"
)

// QuizHandler serves the teacher-facing quiz management routes.
type QuizHandler struct {
	quizService       *services.QuizService
	submissionService *services.SubmissionService
}

func NewQuizHandler(quizService *services.QuizService, submissionService *services.SubmissionService) *QuizHandler {
	return &QuizHandler{quizService: quizService, submissionService: submissionService}
}

type SubmissionListResponse struct {
	QuizID           uint         `json:"quiz_id"`
	QuizTitle        string       `json:"quiz_title"`
	TotalSubmissions int          `json:"total_submissions"`
	Submissions      []Submission `json:"submissions"`
}

// CreateQuiz godoc
// @Summary      Create a quiz
// @Description  Create a quiz with its questions; each question's answer must be one of its options
// @Tags         teacher
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body services.CreateQuizInput true "Quiz definition"
// @Success      201 {object} Quiz
// @Failure      400 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes [post]
func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")

	var input services.CreateQuizInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.CreateQuiz(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, quiz)
}

// ListQuizzes godoc
// @Summary      List own quizzes
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.QuizSummary
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes [get]
func (h *QuizHandler) ListQuizzes(c *gin.Context) {
	userID := c.GetUint("user_id")

	summaries, err := h.quizService.ListQuizzesByOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetQuiz godoc
// @Summary      Get a quiz
// @Description  Full quiz with questions, options and answers
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} Quiz
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes/{id} [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
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

	c.JSON(http.StatusOK, quiz)
}

// DeleteQuiz godoc
// @Summary      Delete a quiz
// @Description  Removes the quiz and all its submissions; deleting twice returns 404
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes/{id} [delete]
func (h *QuizHandler) DeleteQuiz(c *gin.Context) {
	userID := c.GetUint("user_id")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	if err := h.quizService.DeleteQuiz(uint(quizID), userID); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "quiz deleted"})
}

// ListSubmissions godoc
// @Summary      List submissions for a quiz
// @Tags         teacher
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} SubmissionListResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/teacher/quizzes/{id}/submissions [get]
func (h *QuizHandler) ListSubmissions(c *gin.Context) {
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

	c.JSON(http.StatusOK, SubmissionListResponse{
		QuizID:           quiz.ID,
		QuizTitle:        quiz.Title,
		TotalSubmissions: len(subs),
		Submissions:      subs,
	})
}
