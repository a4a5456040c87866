package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/hanbit-dev/carebond/internal/services"
)

type reportSavePayload struct {
	Date             string                            `json:"date"`
	TimeEntries      []models.TimeEntry                `json:"timeEntries"`
	Activities       map[string]models.TimeOfDayChecks `json:"activities"`
	Medications      map[string]models.TimeOfDayChecks `json:"medications"`
	SpecialNote      string                            `json:"specialNote"`
	GuardianRequests []models.GuardianRequest          `json:"guardianRequests"`
}

func (handler *Handler) CreateReport(c *fiber.Ctx) error {
	return handler.saveReport(c, "")
}

// ReplaceReport stores the submitted aggregate as-is; the last full save
// for an id wins.
func (handler *Handler) ReplaceReport(c *fiber.Ctx) error {
	return handler.saveReport(c, c.Params("id"))
}

func (handler *Handler) saveReport(c *fiber.Ctx, reportID string) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	var payload reportSavePayload
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}
	date, parseErr := time.ParseInLocation(apiDateLayout, payload.Date, handler.location)
	if parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.report_date_required")
	}

	if reportID != "" {
		existing, getErr := handler.reportService.Get(reportID)
		switch {
		case getErr == nil:
			// Replacing another patient's report must look like a miss.
			if existing.PatientID != patientID {
				return serviceError(c, services.ErrReportNotFound)
			}
		case errors.Is(getErr, services.ErrReportNotFound):
			// Unknown id, the replace becomes an insert.
		default:
			return serviceError(c, getErr)
		}
	}

	report := models.CareReport{
		ID:               reportID,
		PatientID:        patientID,
		AuthorID:         user.ID,
		Date:             date,
		TimeEntries:      payload.TimeEntries,
		Activities:       payload.Activities,
		Medications:      payload.Medications,
		SpecialNote:      payload.SpecialNote,
		GuardianRequests: payload.GuardianRequests,
	}

	saved, saveErr := handler.reportService.Save(report)
	if saveErr != nil {
		return serviceError(c, saveErr)
	}

	status := fiber.StatusOK
	if reportID == "" {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(fiber.Map{"report": reportView(saved, handler.location)})
}

func (handler *Handler) DeleteReport(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	report, scopeErr := handler.loadScopedReport(c.Params("id"), patientID)
	if scopeErr != nil {
		return serviceError(c, scopeErr)
	}

	if deleteErr := handler.reportService.Delete(report.ID); deleteErr != nil {
		return serviceError(c, deleteErr)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) AddReportEntry(c *fiber.Ctx) error {
	var payload timeEntryPayload
	return handler.mutateReport(c, &payload, func(reportID string) (models.CareReport, error) {
		at := models.ClockTime{Hour: payload.Hour, Minute: payload.Minute}
		return handler.reportService.AddEntry(reportID, at, payload.Description)
	})
}

func (handler *Handler) ToggleReportActivity(c *fiber.Ctx) error {
	var payload checklistTogglePayload
	return handler.mutateReport(c, &payload, func(reportID string) (models.CareReport, error) {
		return handler.reportService.ToggleActivityCheck(reportID, payload.Category, payload.TimeOfDay)
	})
}

func (handler *Handler) ToggleReportMedication(c *fiber.Ctx) error {
	var payload checklistTogglePayload
	return handler.mutateReport(c, &payload, func(reportID string) (models.CareReport, error) {
		return handler.reportService.ToggleMedicationCheck(reportID, payload.Name, payload.TimeOfDay)
	})
}

func (handler *Handler) SetReportNote(c *fiber.Ctx) error {
	var payload specialNotePayload
	return handler.mutateReport(c, &payload, func(reportID string) (models.CareReport, error) {
		return handler.reportService.SetNote(reportID, payload.Text)
	})
}

func (handler *Handler) AcknowledgeReportRequest(c *fiber.Ctx) error {
	var payload acknowledgePayload
	return handler.mutateReport(c, &payload, func(reportID string) (models.CareReport, error) {
		return handler.reportService.AcknowledgeRequest(reportID, payload.RequestID)
	})
}

func (handler *Handler) mutateReport(c *fiber.Ctx, payload any, op func(reportID string) (models.CareReport, error)) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}
	if parseErr := c.BodyParser(payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	report, scopeErr := handler.loadScopedReport(c.Params("id"), patientID)
	if scopeErr != nil {
		return serviceError(c, scopeErr)
	}

	mutated, opErr := op(report.ID)
	if opErr != nil {
		return serviceError(c, opErr)
	}
	return c.JSON(fiber.Map{"report": reportView(mutated, handler.location)})
}
