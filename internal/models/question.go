package models

type Question struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	QuizID   uint     `gorm:"not null;index" json:"quiz_id"`
	Text     string   `gorm:"type:text;not null" json:"q"`
	Answer   string   `gorm:"size:500;not null" json:"answer,omitempty"`
	OrderNum int      `gorm:"not null" json:"order_num"`
	Options  []Option `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
}
