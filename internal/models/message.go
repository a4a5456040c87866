package models

import "time"

// Message is one entry in the guardian/caregiver thread. Messages are
// immutable once sent; there is no edit operation.
type Message struct {
	ID         string    `gorm:"primaryKey"`
	PatientID  uint      `gorm:"not null;index"`
	AuthorID   uint      `gorm:"not null"`
	AuthorRole string    `gorm:"not null"`
	Text       string    `gorm:"not null"`
	SentAt     time.Time `gorm:"not null"`
}
