package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/hanbit-dev/carebond/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	_, reports, err := handler.exportRangeReports(c)
	if err != nil {
		return serviceError(c, err)
	}

	summary := handler.exportService.Summarize(reports)
	return c.JSON(summary)
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	_, reports, err := handler.exportRangeReports(c)
	if err != nil {
		return serviceError(c, err)
	}

	entries := handler.exportService.BuildJSONEntries(reports)
	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "application/json", exportFilename(now, "json"))
	return c.JSON(fiber.Map{"reports": entries})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	_, reports, err := handler.exportRangeReports(c)
	if err != nil {
		return serviceError(c, err)
	}

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if writeErr := writer.Write(services.ExportCSVHeaders); writeErr != nil {
		return apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
	for _, record := range handler.exportService.BuildCSVRecords(reports) {
		if writeErr := writer.Write(record); writeErr != nil {
			return apiError(c, fiber.StatusInternalServerError, "error.internal")
		}
	}
	writer.Flush()
	if writeErr := writer.Error(); writeErr != nil {
		return apiError(c, fiber.StatusInternalServerError, "error.internal")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, "text/csv", exportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportXLSX(c *fiber.Ctx) error {
	_, reports, err := handler.exportRangeReports(c)
	if err != nil {
		return serviceError(c, err)
	}

	workbook, buildErr := handler.exportService.BuildXLSX(reports)
	if buildErr != nil {
		return apiError(c, fiber.StatusInternalServerError, "error.internal")
	}

	var output bytes.Buffer
	if _, writeErr := workbook.WriteTo(&output); writeErr != nil {
		return apiError(c, fiber.StatusInternalServerError, "error.internal")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(
		c,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		exportFilename(now, "xlsx"),
	)
	return c.Send(output.Bytes())
}

// exportRangeReports parses the optional from/to query bounds and loads
// the reports they cover. Errors come back raw for serviceError.
func (handler *Handler) exportRangeReports(c *fiber.Ctx) (uint, []models.CareReport, error) {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return 0, nil, err
	}

	from, to, rangeErr := services.ParseExportRange(c.Query("from"), c.Query("to"), handler.location)
	if rangeErr != nil {
		return 0, nil, rangeErr
	}

	reports, loadErr := handler.exportService.LoadRange(patientID, from, to)
	if loadErr != nil {
		return 0, nil, loadErr
	}
	return patientID, reports, nil
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}

func exportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("carebond-reports-%s.%s", now.Format("20060102"), extension)
}
