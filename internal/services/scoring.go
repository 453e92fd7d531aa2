package services

import (
	"errors"

	"github.com/VishvKaneria/dynamic-active-lms/internal/models"
)

// NoAnswer is the sentinel shown in feedback when a student left a question blank.
const NoAnswer = "No Answer"

type QuestionFeedback struct {
	Question      string `json:"question"`
	StudentAnswer string `json:"student_answer"`
	IsCorrect     bool   `json:"is_correct"`
}

type ScoreResult struct {
	Score    int                `json:"score"`
	Total    int                `json:"total"`
	Feedback []QuestionFeedback `json:"feedback"`
}

type ScoringService struct{}

func NewScoringService() *ScoringService {
	return &ScoringService{}
}

// Score grades an answer list against a quiz. Answers shorter than the
// question list are padded with empty strings (unanswered, always wrong);
// a longer list cannot be matched to questions and is rejected.
func (s *ScoringService) Score(quiz *models.Quiz, answers []string) (*ScoreResult, error) {
	if len(answers) > len(quiz.Questions) {
		return nil, errors.New("submitted answers exceed question count")
	}

	result := &ScoreResult{
		Total:    len(quiz.Questions),
		Feedback: make([]QuestionFeedback, 0, len(quiz.Questions)),
	}

	for i, q := range quiz.Questions {
		answer := ""
		if i < len(answers) {
			answer = answers[i]
		}

		correct := answer != "" && answer == q.Answer
		if correct {
			result.Score++
		}

		display := answer
		if display == "" {
			display = NoAnswer
		}
		result.Feedback = append(result.Feedback, QuestionFeedback{
			Question:      q.Text,
			StudentAnswer: display,
			IsCorrect:     correct,
		})
	}

	return result, nil
}
