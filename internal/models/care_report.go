package models

import "time"

const (
	TimeOfDayMorning   = "morning"
	TimeOfDayAfternoon = "afternoon"
	TimeOfDayEvening   = "evening"
)

const (
	ActivityBowel = "bowel"
	ActivityMeal  = "meal"
)

func ActivityCategories() []string {
	return []string{ActivityBowel, ActivityMeal}
}

// TimeOfDayChecks always carries all three time-of-day slots; a report never
// stores a partial record.
type TimeOfDayChecks struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
}

type TimeEntry struct {
	ActivityAt  ClockTime `json:"activityAt"`
	Description string    `json:"description"`
}

type GuardianRequest struct {
	ID        string `json:"id"`
	Request   string `json:"request"`
	IsChecked bool   `json:"isChecked"`
}

// CareReport is the daily care report a caregiver fills in for one patient.
// TimeEntries keep insertion order and are never sorted by clock time; the
// medication set is fixed when the report is created from the patient's
// medication list.
type CareReport struct {
	ID               string                     `gorm:"primaryKey"`
	PatientID        uint                       `gorm:"not null;index:idx_reports_patient_date"`
	AuthorID         uint                       `gorm:"not null"`
	Date             time.Time                  `gorm:"type:date;not null;index:idx_reports_patient_date"`
	TimeEntries      []TimeEntry                `gorm:"serializer:json"`
	Activities       map[string]TimeOfDayChecks `gorm:"serializer:json"`
	Medications      map[string]TimeOfDayChecks `gorm:"serializer:json"`
	SpecialNote      string
	GuardianRequests []GuardianRequest `gorm:"serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
