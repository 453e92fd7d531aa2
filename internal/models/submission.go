package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Submission is one scored attempt of a student on a quiz. The unique index on
// (quiz_id, student_id, attempt) is what keeps concurrent submissions from
// ever sharing an attempt number.
type Submission struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	QuizID    uint           `gorm:"not null;index;uniqueIndex:idx_submission_attempt" json:"quiz_id"`
	StudentID string         `gorm:"size:100;not null;index;uniqueIndex:idx_submission_attempt" json:"student_id"`
	Attempt   int            `gorm:"not null;uniqueIndex:idx_submission_attempt" json:"attempt"`
	Answers   datatypes.JSON `gorm:"type:jsonb" json:"answers"`
	Score     int            `gorm:"not null" json:"score"`
	Total     int            `gorm:"not null" json:"total"`
	CreatedAt time.Time      `json:"created_at"`
}

// AnswerList decodes the stored answer array. A corrupt or empty column
// decodes to nil, which scoring and analytics treat as all-unanswered.
func (s *Submission) AnswerList() []string {
	var answers []string
	if len(s.Answers) == 0 {
		return nil
	}
	if err := json.Unmarshal(s.Answers, &answers); err != nil {
		return nil
	}
	return answers
}
