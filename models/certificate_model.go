package models

import (
	"time"
)

type Certificate struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"not null;index" json:"user_id"`
	AttemptID      uint      `gorm:"not null;uniqueIndex" json:"attempt_id"`
	ExamTitle      string    `gorm:"size:200;not null" json:"exam_title"`
	SerialNumber   string    `gorm:"size:64;not null;unique" json:"serial_number"`
	CertificateURL string    `gorm:"size:255;not null" json:"certificate_url"`
	IssuedAt       time.Time `gorm:"not null" json:"issued_at"`

	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Attempt Attempt `gorm:"foreignKey:AttemptID" json:"-"`
}
