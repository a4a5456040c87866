package models

import "time"

const (
	RoleGuardian     = "guardian"
	RoleCaregiver    = "caregiver"
	RoleAcquaintance = "acquaintance"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleGuardian, RoleCaregiver, RoleAcquaintance:
		return true
	default:
		return false
	}
}

type User struct {
	ID                  uint      `gorm:"primaryKey"`
	Email               string    `gorm:"uniqueIndex;not null"`
	PasswordHash        string    `gorm:"not null"`
	Role                string    `gorm:"not null;default:guardian"`
	Name                string    `gorm:"not null;default:''"`
	Phone               string    `gorm:"not null;default:''"`
	Age                 int       `gorm:"not null;default:0"`
	Address             string    `gorm:"not null;default:''"`
	Workplace           string    `gorm:"not null;default:''"`
	Relationship        string    `gorm:"not null;default:''"`
	PatientID           *uint     `gorm:"index"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	MustChangePassword  bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"not null"`
	UpdatedAt           time.Time
}
