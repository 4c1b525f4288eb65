package models

// AttemptQuestion is the grading snapshot taken when an attempt starts.
// Grading reads these rows, so editing an exam's questions mid-attempt
// cannot change what an in-progress attempt is scored against.
type AttemptQuestion struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	AttemptID     uint `gorm:"not null;index" json:"attempt_id"`
	QuestionID    uint `gorm:"not null" json:"question_id"`
	CorrectAnswer int  `gorm:"not null" json:"-"`
	Marks         int  `gorm:"not null;default:1" json:"marks"`
	Position      int  `gorm:"not null" json:"position"`

	Attempt Attempt `gorm:"foreignKey:AttemptID" json:"-"`
}
