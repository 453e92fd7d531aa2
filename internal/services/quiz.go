package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VishvKaneria/dynamic-active-lms/internal/models"

	"gorm.io/gorm"
)

type QuizService struct {
	db *gorm.DB
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db}
}

type QuestionInput struct {
	Text    string   `json:"q"`
	Options []string `json:"options"`
	Answer  string   `json:"answer"`
}

type CreateQuizInput struct {
	Subject   string          `json:"subject"`
	Title     string          `json:"title"`
	Questions []QuestionInput `json:"questions"`
}

type QuizSummary struct {
	ID      uint   `json:"id"`
	Title   string `json:"title"`
	Subject string `json:"subject"`
}

func (s *QuizService) CreateQuiz(ownerID uint, input CreateQuizInput) (*models.Quiz, error) {
	if err := validateQuizInput(input); err != nil {
		return nil, err
	}

	quiz := models.Quiz{
		OwnerID: ownerID,
		Subject: strings.TrimSpace(input.Subject),
		Title:   strings.TrimSpace(input.Title),
	}

	tx := s.db.Begin()
	if err := tx.Create(&quiz).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	for i, q := range input.Questions {
		question := models.Question{
			QuizID:   quiz.ID,
			Text:     q.Text,
			Answer:   q.Answer,
			OrderNum: i,
		}
		if err := tx.Create(&question).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
		for j, text := range q.Options {
			opt := models.Option{
				QuestionID: question.ID,
				Text:       text,
				OrderNum:   j,
			}
			if err := tx.Create(&opt).Error; err != nil {
				tx.Rollback()
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return s.GetQuizByID(quiz.ID)
}

func (s *QuizService) GetQuizByID(quizID uint) (*models.Quiz, error) {
	var quiz models.Quiz
	err := s.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		Preload("Questions.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_num ASC")
		}).
		First(&quiz, quizID).Error
	if err != nil {
		return nil, errors.New("quiz not found")
	}
	return &quiz, nil
}

func (s *QuizService) GetQuizOwned(quizID, ownerID uint) (*models.Quiz, error) {
	quiz, err := s.GetQuizByID(quizID)
	if err != nil {
		return nil, err
	}
	if quiz.OwnerID != ownerID {
		return nil, errors.New("quiz not found")
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes() ([]QuizSummary, error) {
	var summaries []QuizSummary
	err := s.db.Model(&models.Quiz{}).
		Select("id, title, subject").
		Order("id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

func (s *QuizService) ListQuizzesByOwner(ownerID uint) ([]QuizSummary, error) {
	var summaries []QuizSummary
	err := s.db.Model(&models.Quiz{}).
		Select("id, title, subject").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}

// DeleteQuiz cascade-deletes the quiz together with its questions, options and
// submissions so nothing is left referencing a missing quiz.
func (s *QuizService) DeleteQuiz(quizID, ownerID uint) error {
	var quiz models.Quiz
	if err := s.db.Where("id = ? AND owner_id = ?", quizID, ownerID).First(&quiz).Error; err != nil {
		return errors.New("quiz not found")
	}

	tx := s.db.Begin()
	if err := tx.Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", quizID).
		Delete(&models.Option{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Question{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Where("quiz_id = ?", quizID).Delete(&models.Submission{}).Error; err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Delete(&quiz).Error; err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func validateQuizInput(input CreateQuizInput) error {
	if strings.TrimSpace(input.Subject) == "" {
		return errors.New("subject is required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return errors.New("title is required")
	}
	if len(input.Questions) == 0 {
		return errors.New("quiz must have at least one question")
	}

	for i, q := range input.Questions {
		if strings.TrimSpace(q.Text) == "" {
			return fmt.Errorf("question %d: text is required", i+1)
		}
		if len(q.Options) < 2 || len(q.Options) > 6 {
			return fmt.Errorf("question %d: must have 2 to 6 options", i+1)
		}
		hasAnswer := false
		for _, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return fmt.Errorf("question %d: options must not be empty", i+1)
			}
			if opt == q.Answer {
				hasAnswer = true
			}
		}
		if q.Answer == "" {
			return fmt.Errorf("question %d: correct answer is required", i+1)
		}
		if !hasAnswer {
			return fmt.Errorf("question %d: correct answer must be one of the options", i+1)
		}
	}
	return nil
}
