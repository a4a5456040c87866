package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
)

const apiDateLayout = "2006-01-02"

func userView(user *models.User) fiber.Map {
	view := fiber.Map{
		"id":                  user.ID,
		"email":               user.Email,
		"role":                user.Role,
		"name":                user.Name,
		"phone":               user.Phone,
		"age":                 user.Age,
		"address":             user.Address,
		"workplace":           user.Workplace,
		"relationship":        user.Relationship,
		"onboardingCompleted": user.OnboardingCompleted,
		"mustChangePassword":  user.MustChangePassword,
	}
	if user.PatientID != nil {
		view["patientId"] = *user.PatientID
	}
	return view
}

// patientView includes the matching code only for the guardian; care team
// members joined with it but must not be able to leak it further.
func patientView(patient models.Patient, viewer *models.User) fiber.Map {
	view := fiber.Map{
		"id":          patient.ID,
		"name":        patient.Name,
		"age":         patient.Age,
		"medications": medicationNames(patient),
	}
	if viewer != nil && viewer.Role == models.RoleGuardian && viewer.ID == patient.GuardianID {
		view["matchingCode"] = patient.MatchingCode
	}
	return view
}

func medicationNames(patient models.Patient) []string {
	names := make([]string, 0, len(patient.Medications))
	names = append(names, patient.Medications...)
	return names
}

func reportView(report models.CareReport, location *time.Location) fiber.Map {
	return fiber.Map{
		"id":               report.ID,
		"patientId":        report.PatientID,
		"authorId":         report.AuthorID,
		"date":             report.Date.Format(apiDateLayout),
		"timeEntries":      report.TimeEntries,
		"activities":       report.Activities,
		"medications":      report.Medications,
		"specialNote":      report.SpecialNote,
		"guardianRequests": report.GuardianRequests,
		"updatedAt":        report.UpdatedAt.In(location).Format(time.RFC3339),
	}
}

func reportListView(reports []models.CareReport, location *time.Location) []fiber.Map {
	views := make([]fiber.Map, 0, len(reports))
	for _, report := range reports {
		views = append(views, reportView(report, location))
	}
	return views
}

func requestRecordView(record models.GuardianRequestRecord) fiber.Map {
	return fiber.Map{
		"id":        record.ID,
		"request":   record.Request,
		"createdAt": record.CreatedAt.Format(time.RFC3339),
	}
}

func messageView(message models.Message) fiber.Map {
	return fiber.Map{
		"id":         message.ID,
		"authorId":   message.AuthorID,
		"authorRole": message.AuthorRole,
		"text":       message.Text,
		"sentAt":     message.SentAt.Format(time.RFC3339),
	}
}

func photoView(photo models.Photo) fiber.Map {
	return fiber.Map{
		"id":          photo.ID,
		"uploaderId":  photo.UploaderID,
		"contentType": photo.ContentType,
		"caption":     photo.Caption,
		"createdAt":   photo.CreatedAt.Format(time.RFC3339),
		"fileUrl":     "/api/photos/" + photo.ID + "/file",
	}
}
