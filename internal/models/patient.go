package models

import "time"

type Patient struct {
	ID           uint      `gorm:"primaryKey"`
	GuardianID   uint      `gorm:"not null;index"`
	Name         string    `gorm:"not null"`
	Age          int       `gorm:"not null;default:0"`
	MatchingCode string    `gorm:"uniqueIndex;not null"`
	Medications  []string  `gorm:"serializer:json"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time
}

// GuardianRequestRecord is a guardian's standing request to the caregiver.
// Open requests are copied into every newly created care report, where the
// caregiver acknowledges them per report.
type GuardianRequestRecord struct {
	ID        string    `gorm:"primaryKey"`
	PatientID uint      `gorm:"not null;index"`
	Request   string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}
