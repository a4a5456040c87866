package models

import "time"

type Photo struct {
	ID          string    `gorm:"primaryKey"`
	PatientID   uint      `gorm:"not null;index"`
	UploaderID  uint      `gorm:"not null"`
	Token       string    `gorm:"uniqueIndex;not null"`
	ContentType string    `gorm:"not null"`
	Caption     string    `gorm:"not null;default:''"`
	Data        []byte    `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
}
