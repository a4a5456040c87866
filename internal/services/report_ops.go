package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-dev/carebond/internal/models"
)

var (
	ErrEntryDescriptionRequired = errors.New("time entry description is required")
	ErrUnknownActivity          = errors.New("unknown activity category")
	ErrUnknownTimeOfDay         = errors.New("unknown time of day")
	ErrUnknownMedication        = errors.New("medication is not part of this report")
	ErrGuardianRequestNotFound  = errors.New("guardian request not found")
)

// NewCareReport builds an empty report for one day. Every activity category
// and every medication starts with all three time-of-day slots unchecked; the
// medication set is fixed for the lifetime of the report.
func NewCareReport(date time.Time, medicationNames []string) models.CareReport {
	activities := make(map[string]models.TimeOfDayChecks, 2)
	for _, category := range models.ActivityCategories() {
		activities[category] = models.TimeOfDayChecks{}
	}

	medications := make(map[string]models.TimeOfDayChecks, len(medicationNames))
	for _, name := range medicationNames {
		medications[name] = models.TimeOfDayChecks{}
	}

	return models.CareReport{
		ID:               uuid.NewString(),
		Date:             date,
		TimeEntries:      make([]models.TimeEntry, 0),
		Activities:       activities,
		Medications:      medications,
		GuardianRequests: make([]models.GuardianRequest, 0),
	}
}

// AddTimeEntry appends a journal entry. Entries keep insertion order; they
// are never re-sorted by clock time.
func AddTimeEntry(report models.CareReport, at models.ClockTime, description string) (models.CareReport, error) {
	if strings.TrimSpace(description) == "" {
		return models.CareReport{}, ErrEntryDescriptionRequired
	}

	next := CloneCareReport(report)
	next.TimeEntries = append(next.TimeEntries, models.TimeEntry{ActivityAt: at, Description: description})
	return next, nil
}

func ToggleActivity(report models.CareReport, category string, timeOfDay string) (models.CareReport, error) {
	checks, ok := report.Activities[category]
	if !ok {
		return models.CareReport{}, ErrUnknownActivity
	}

	flipped, err := flipTimeOfDay(checks, timeOfDay)
	if err != nil {
		return models.CareReport{}, err
	}

	next := CloneCareReport(report)
	next.Activities[category] = flipped
	return next, nil
}

func ToggleMedication(report models.CareReport, medicationName string, timeOfDay string) (models.CareReport, error) {
	checks, ok := report.Medications[medicationName]
	if !ok {
		return models.CareReport{}, ErrUnknownMedication
	}

	flipped, err := flipTimeOfDay(checks, timeOfDay)
	if err != nil {
		return models.CareReport{}, err
	}

	next := CloneCareReport(report)
	next.Medications[medicationName] = flipped
	return next, nil
}

func SetSpecialNote(report models.CareReport, text string) models.CareReport {
	next := CloneCareReport(report)
	next.SpecialNote = text
	return next
}

func AcknowledgeGuardianRequest(report models.CareReport, requestID string) (models.CareReport, error) {
	next := CloneCareReport(report)
	for index := range next.GuardianRequests {
		if next.GuardianRequests[index].ID == requestID {
			next.GuardianRequests[index].IsChecked = true
			return next, nil
		}
	}
	return models.CareReport{}, ErrGuardianRequestNotFound
}

// CloneCareReport returns a deep copy. All report operations work on copies
// so a caller holding an older version never observes a partial update.
func CloneCareReport(report models.CareReport) models.CareReport {
	next := report

	next.TimeEntries = make([]models.TimeEntry, len(report.TimeEntries))
	copy(next.TimeEntries, report.TimeEntries)

	next.Activities = make(map[string]models.TimeOfDayChecks, len(report.Activities))
	for category, checks := range report.Activities {
		next.Activities[category] = checks
	}

	next.Medications = make(map[string]models.TimeOfDayChecks, len(report.Medications))
	for name, checks := range report.Medications {
		next.Medications[name] = checks
	}

	next.GuardianRequests = make([]models.GuardianRequest, len(report.GuardianRequests))
	copy(next.GuardianRequests, report.GuardianRequests)

	return next
}

func flipTimeOfDay(checks models.TimeOfDayChecks, timeOfDay string) (models.TimeOfDayChecks, error) {
	switch timeOfDay {
	case models.TimeOfDayMorning:
		checks.Morning = !checks.Morning
	case models.TimeOfDayAfternoon:
		checks.Afternoon = !checks.Afternoon
	case models.TimeOfDayEvening:
		checks.Evening = !checks.Evening
	default:
		return models.TimeOfDayChecks{}, ErrUnknownTimeOfDay
	}
	return checks, nil
}
