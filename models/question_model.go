package models

type Question struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	ExamID        uint   `gorm:"not null;index" json:"exam_id"`
	Text          string `gorm:"type:text;not null" json:"text"`
	Option1       string `gorm:"size:200;not null" json:"option1"`
	Option2       string `gorm:"size:200;not null" json:"option2"`
	Option3       string `gorm:"size:200;not null" json:"option3"`
	Option4       string `gorm:"size:200;not null" json:"option4"`
	CorrectAnswer int    `gorm:"not null" json:"-"`
	Marks         int    `gorm:"not null;default:1" json:"marks"`
}
