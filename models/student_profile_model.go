package models

type StudentProfile struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"not null;uniqueIndex" json:"user_id"`
	ProfilePicURL *string `gorm:"size:255" json:"profile_pic_url"`
}
