package models

import "time"

type Quiz struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	OwnerID   uint       `gorm:"not null;index" json:"owner_id"`
	Owner     User       `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
	Subject   string     `gorm:"size:100;not null" json:"subject"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Questions []Question `gorm:"foreignKey:QuizID" json:"questions,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
