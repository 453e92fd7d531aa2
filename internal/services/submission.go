package services

import (
	"encoding/json"
	"errors"

	"github.com/VishvKaneria/dynamic-active-lms/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type SubmissionService struct {
	db *gorm.DB
}

func NewSubmissionService(db *gorm.DB) *SubmissionService {
	return &SubmissionService{db: db}
}

const maxAttemptRetries = 3

// RecordAttempt stores one scored attempt and assigns the next attempt number
// for the (student, quiz) pair. The number is read as MAX(attempt)+1 and the
// insert is backed by a unique index on (quiz_id, student_id, attempt), so two
// concurrent submissions can never claim the same number; the loser re-reads
// and retries.
func (s *SubmissionService) RecordAttempt(studentID string, quizID uint, answers []string, score, total int) (*models.Submission, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return nil, err
	}

	var lastErr error
	for try := 0; try < maxAttemptRetries; try++ {
		var count int64
		if err := s.db.Model(&models.Quiz{}).Where("id = ?", quizID).Count(&count).Error; err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, errors.New("quiz not found")
		}

		var last int
		if err := s.db.Model(&models.Submission{}).
			Where("quiz_id = ? AND student_id = ?", quizID, studentID).
			Select("COALESCE(MAX(attempt), 0)").
			Scan(&last).Error; err != nil {
			return nil, err
		}

		sub := models.Submission{
			QuizID:    quizID,
			StudentID: studentID,
			Attempt:   last + 1,
			Answers:   datatypes.JSON(raw),
			Score:     score,
			Total:     total,
		}
		if err := s.db.Create(&sub).Error; err != nil {
			// attempt number taken by a concurrent submission
			lastErr = err
			continue
		}
		return &sub, nil
	}
	return nil, errors.New("failed to record attempt: " + lastErr.Error())
}

func (s *SubmissionService) ListForQuiz(quizID uint) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("quiz_id = ?", quizID).
		Order("student_id ASC, attempt ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

func (s *SubmissionService) ListForStudent(studentID string) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Where("student_id = ?", studentID).
		Order("quiz_id ASC, attempt ASC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}
