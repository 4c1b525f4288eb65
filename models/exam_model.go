package models

import (
	"time"
)

type Exam struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	Title           string `gorm:"size:200;not null" json:"title"`
	Description     string `gorm:"type:text" json:"description"`
	DurationMinutes int    `gorm:"not null;default:30" json:"duration_minutes"`
	PassMarks       int    `gorm:"not null;default:0" json:"pass_marks"`

	Questions []Question `gorm:"constraint:OnDelete:CASCADE" json:"questions,omitempty"`
	Attempts  []Attempt  `gorm:"constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}
