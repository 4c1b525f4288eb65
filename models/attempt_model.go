package models

import (
	"time"
)

type Attempt struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"not null;index" json:"user_id"`
	ExamID      uint       `gorm:"not null;index" json:"exam_id"`
	StartedAt   time.Time  `gorm:"not null" json:"started_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Score       int        `gorm:"not null;default:0" json:"score"`
	IsSubmitted bool       `gorm:"not null;default:false" json:"is_submitted"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Exam Exam `gorm:"foreignKey:ExamID" json:"-"`

	Questions []AttemptQuestion `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
