package services

import (
	"testing"

	"github.com/VishvKaneria/dynamic-active-lms/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathQuiz() *models.Quiz {
	return &models.Quiz{
		ID:      1,
		Subject: "Math",
		Title:   "Arithmetic Basics",
		Questions: []models.Question{
			{Text: "What is 2+2?", Answer: "4"},
			{Text: "What is 3*3?", Answer: "9"},
			{Text: "What is 10/2?", Answer: "5"},
		},
	}
}

func TestScore_AllCorrect(t *testing.T) {
	s := NewScoringService()

	result, err := s.Score(mathQuiz(), []string{"4", "9", "5"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Score)
	assert.Equal(t, 3, result.Total)
	for _, fb := range result.Feedback {
		assert.True(t, fb.IsCorrect)
	}
}

func TestScore_PartiallyCorrect(t *testing.T) {
	s := NewScoringService()

	result, err := s.Score(mathQuiz(), []string{"4", "6", "5"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.True(t, result.Feedback[0].IsCorrect)
	assert.False(t, result.Feedback[1].IsCorrect)
	assert.Equal(t, "6", result.Feedback[1].StudentAnswer)
	assert.True(t, result.Feedback[2].IsCorrect)
}

func TestScore_EmptyAnswerIsNoAnswer(t *testing.T) {
	s := NewScoringService()

	result, err := s.Score(mathQuiz(), []string{"4", "", "5"})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Score)
	assert.False(t, result.Feedback[1].IsCorrect)
	assert.Equal(t, NoAnswer, result.Feedback[1].StudentAnswer)
}

func TestScore_ShortAnswerListPadded(t *testing.T) {
	s := NewScoringService()

	result, err := s.Score(mathQuiz(), []string{"4"})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Score)
	assert.Equal(t, 3, result.Total)
	assert.Len(t, result.Feedback, 3)
	assert.Equal(t, NoAnswer, result.Feedback[1].StudentAnswer)
	assert.Equal(t, NoAnswer, result.Feedback[2].StudentAnswer)
}

func TestScore_TooManyAnswersRejected(t *testing.T) {
	s := NewScoringService()

	result, err := s.Score(mathQuiz(), []string{"4", "9", "5", "extra"})
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestScore_CaseSensitiveExactMatch(t *testing.T) {
	s := NewScoringService()
	quiz := &models.Quiz{
		Questions: []models.Question{
			{Text: "Capital of France?", Answer: "Paris"},
		},
	}

	result, err := s.Score(quiz, []string{"paris"})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Score)

	result, err = s.Score(quiz, []string{"Paris"})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Score)
}

func TestScore_BoundsHold(t *testing.T) {
	s := NewScoringService()
	quiz := mathQuiz()

	for _, answers := range [][]string{
		{},
		{"wrong", "wrong", "wrong"},
		{"4", "9", "5"},
		{"", "", ""},
	} {
		result, err := s.Score(quiz, answers)
		require.NoError(t, err)
		assert.Equal(t, len(quiz.Questions), result.Total)
		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, result.Total)
	}
}
