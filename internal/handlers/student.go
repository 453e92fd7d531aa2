package handlers

import (
	"net/http"
	"strconv"

	"github.com/VishvKaneria/dynamic-active-lms/internal/services"

	"github.com/gin-gonic/gin"
)

// StudentHandler serves the student-facing routes: browsing quizzes,
// submitting answers and reading own results.
type StudentHandler struct {
	quizService       *services.QuizService
	scoringService    *services.ScoringService
	submissionService *services.SubmissionService
}

func NewStudentHandler(quizService *services.QuizService, scoringService *services.ScoringService, submissionService *services.SubmissionService) *StudentHandler {
	return &StudentHandler{
		quizService:       quizService,
		scoringService:    scoringService,
		submissionService: submissionService,
	}
}

// StudentQuestion is a question stripped of its correct answer.
type StudentQuestion struct {
	ID      uint     `json:"id"`
	Text    string   `json:"q"`
	Options []string `json:"options"`
}

type StudentQuizResponse struct {
	ID        uint              `json:"id"`
	Title     string            `json:"title"`
	Subject   string            `json:"subject"`
	Questions []StudentQuestion `json:"questions"`
}

type SubmitRequest struct {
	Answers []string `json:"answers"`
}

type SubmitResponse struct {
	StudentID string                      `json:"student_id"`
	QuizID    uint                        `json:"quiz_id"`
	Attempt   int                         `json:"attempt"`
	Answers   []string                    `json:"answers"`
	Score     int                         `json:"score"`
	Total     int                         `json:"total"`
	Feedback  []services.QuestionFeedback `json:"feedback"`
}

// ListQuizzes godoc
// @Summary      List available quizzes
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} services.QuizSummary
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/student/quizzes [get]
func (h *StudentHandler) ListQuizzes(c *gin.Context) {
	summaries, err := h.quizService.ListQuizzes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summaries)
}

// GetQuiz godoc
// @Summary      Get a quiz for taking
// @Description  Quiz with questions and options but without correct answers
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Success      200 {object} StudentQuizResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/student/quizzes/{id} [get]
func (h *StudentHandler) GetQuiz(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	quiz, err := h.quizService.GetQuizByID(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	resp := StudentQuizResponse{
		ID:      quiz.ID,
		Title:   quiz.Title,
		Subject: quiz.Subject,
	}
	for _, q := range quiz.Questions {
		sq := StudentQuestion{ID: q.ID, Text: q.Text}
		for _, opt := range q.Options {
			sq.Options = append(sq.Options, opt.Text)
		}
		resp.Questions = append(resp.Questions, sq)
	}

	c.JSON(http.StatusOK, resp)
}

// Submit godoc
// @Summary      Submit quiz answers
// @Description  Grades the answers, stores the attempt and returns per-question feedback
// @Tags         student
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Quiz ID"
// @Param        request body SubmitRequest true "Ordered answers, one per question"
// @Success      201 {object} SubmitResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/v1/student/quizzes/{id}/submit [post]
func (h *StudentHandler) Submit(c *gin.Context) {
	studentID := c.GetString("username")
	quizID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid quiz id"})
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	quiz, err := h.quizService.GetQuizByID(uint(quizID))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	result, err := h.scoringService.Score(quiz, req.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	sub, err := h.submissionService.RecordAttempt(studentID, quiz.ID, req.Answers, result.Score, result.Total)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, SubmitResponse{
		StudentID: studentID,
		QuizID:    quiz.ID,
		Attempt:   sub.Attempt,
		Answers:   req.Answers,
		Score:     result.Score,
		Total:     result.Total,
		Feedback:  result.Feedback,
	})
}

// MyResults godoc
// @Summary      List own results
// @Description  All of the authenticated student's attempts across quizzes
// @Tags         student
// @Produce      json
// @Security     BearerAuth
// @Success      200 {array} Submission
// @Failure      401 {object} ErrorResponse
// @Router       /api/v1/student/results [get]
func (h *StudentHandler) MyResults(c *gin.Context) {
	studentID := c.GetString("username")

	subs, err := h.submissionService.ListForStudent(studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, subs)
}
