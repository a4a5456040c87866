package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/hanbit-dev/carebond/internal/services"
)

func (handler *Handler) ListReports(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	reports, loadErr := handler.reportService.ListForPatient(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}
	return c.JSON(fiber.Map{"reports": reportListView(reports, handler.location)})
}

// GetReportTemplate returns a fresh report for one day, pre-seeded with
// the patient's medication list and open guardian requests.
func (handler *Handler) GetReportTemplate(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	date, parseErr := time.ParseInLocation(apiDateLayout, c.Query("date"), handler.location)
	if parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.report_date_required")
	}

	template, buildErr := handler.reportService.BuildTemplate(patientID, user.ID, date)
	if buildErr != nil {
		return serviceError(c, buildErr)
	}
	return c.JSON(fiber.Map{"report": reportView(template, handler.location)})
}

func (handler *Handler) GetReport(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	report, scopeErr := handler.loadScopedReport(c.Params("id"), patientID)
	if scopeErr != nil {
		return serviceError(c, scopeErr)
	}
	return c.JSON(fiber.Map{"report": reportView(report, handler.location)})
}

// loadScopedReport hides reports of other patients behind not-found.
func (handler *Handler) loadScopedReport(reportID string, patientID uint) (models.CareReport, error) {
	report, err := handler.reportService.Get(reportID)
	if err != nil {
		return models.CareReport{}, err
	}
	if report.PatientID != patientID {
		return models.CareReport{}, services.ErrReportNotFound
	}
	return report, nil
}
