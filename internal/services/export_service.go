package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/xuri/excelize/v2"
)

var ErrExportRangeInvalid = errors.New("export range invalid")

const exportDateLayout = "2006-01-02"

const ExportSheetName = "간병 리포트"

var ExportCSVHeaders = []string{
	"날짜",
	"배변(아침)",
	"배변(점심)",
	"배변(저녁)",
	"식사(아침)",
	"식사(점심)",
	"식사(저녁)",
	"복약",
	"일지",
	"특이사항",
}

type ExportReportReader interface {
	ListByPatientRange(patientID uint, from *time.Time, to *time.Time) ([]models.CareReport, error)
}

type ExportService struct {
	reports ExportReportReader
}

func NewExportService(reports ExportReportReader) *ExportService {
	return &ExportService{reports: reports}
}

type ExportSummary struct {
	TotalReports int    `json:"totalReports"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ExportChecklist struct {
	Morning   bool `json:"morning"`
	Afternoon bool `json:"afternoon"`
	Evening   bool `json:"evening"`
}

type ExportJSONEntry struct {
	Date        string                     `json:"date"`
	Bowel       ExportChecklist            `json:"bowel"`
	Meal        ExportChecklist            `json:"meal"`
	Medications map[string]ExportChecklist `json:"medications"`
	Entries     []string                   `json:"entries"`
	SpecialNote string                     `json:"specialNote"`
}

// ParseExportRange turns optional from/to query values into day bounds.
// Both bounds are inclusive; to is advanced to end of day by the repository
// query using a half-open upper bound.
func ParseExportRange(fromRaw string, toRaw string, location *time.Location) (*time.Time, *time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	var from, to *time.Time
	if trimmed := strings.TrimSpace(fromRaw); trimmed != "" {
		parsed, err := time.ParseInLocation(exportDateLayout, trimmed, location)
		if err != nil {
			return nil, nil, ErrExportRangeInvalid
		}
		from = &parsed
	}
	if trimmed := strings.TrimSpace(toRaw); trimmed != "" {
		parsed, err := time.ParseInLocation(exportDateLayout, trimmed, location)
		if err != nil {
			return nil, nil, ErrExportRangeInvalid
		}
		end := parsed.AddDate(0, 0, 1)
		to = &end
	}

	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

func (service *ExportService) LoadRange(patientID uint, from *time.Time, to *time.Time) ([]models.CareReport, error) {
	return service.reports.ListByPatientRange(patientID, from, to)
}

func (service *ExportService) Summarize(reports []models.CareReport) ExportSummary {
	summary := ExportSummary{TotalReports: len(reports), HasData: len(reports) > 0}
	if len(reports) == 0 {
		return summary
	}

	first := reports[0].Date
	last := reports[0].Date
	for _, report := range reports[1:] {
		if report.Date.Before(first) {
			first = report.Date
		}
		if report.Date.After(last) {
			last = report.Date
		}
	}
	summary.DateFrom = first.Format(exportDateLayout)
	summary.DateTo = last.Format(exportDateLayout)
	return summary
}

func (service *ExportService) BuildJSONEntries(reports []models.CareReport) []ExportJSONEntry {
	entries := make([]ExportJSONEntry, 0, len(reports))
	for _, report := range reports {
		entry := ExportJSONEntry{
			Date:        report.Date.Format(exportDateLayout),
			Bowel:       exportChecklist(report.Activities[models.ActivityBowel]),
			Meal:        exportChecklist(report.Activities[models.ActivityMeal]),
			Medications: make(map[string]ExportChecklist, len(report.Medications)),
			Entries:     make([]string, 0, len(report.TimeEntries)),
			SpecialNote: report.SpecialNote,
		}
		for name, checks := range report.Medications {
			entry.Medications[name] = exportChecklist(checks)
		}
		for _, timeEntry := range report.TimeEntries {
			entry.Entries = append(entry.Entries, formatTimeEntry(timeEntry))
		}
		entries = append(entries, entry)
	}
	return entries
}

// BuildCSVRecords returns the header plus one record per report, ready for
// encoding/csv.
func (service *ExportService) BuildCSVRecords(reports []models.CareReport) [][]string {
	records := make([][]string, 0, len(reports)+1)
	records = append(records, ExportCSVHeaders)
	for _, report := range reports {
		bowel := report.Activities[models.ActivityBowel]
		meal := report.Activities[models.ActivityMeal]
		records = append(records, []string{
			report.Date.Format(exportDateLayout),
			checkMark(bowel.Morning),
			checkMark(bowel.Afternoon),
			checkMark(bowel.Evening),
			checkMark(meal.Morning),
			checkMark(meal.Afternoon),
			checkMark(meal.Evening),
			formatMedications(report.Medications),
			formatTimeEntries(report.TimeEntries),
			report.SpecialNote,
		})
	}
	return records
}

// BuildXLSX renders the same records as an Excel workbook.
func (service *ExportService) BuildXLSX(reports []models.CareReport) (*excelize.File, error) {
	file := excelize.NewFile()
	sheetIndex, err := file.NewSheet(ExportSheetName)
	if err != nil {
		return nil, fmt.Errorf("create export sheet: %w", err)
	}
	file.SetActiveSheet(sheetIndex)
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	for rowIndex, record := range service.BuildCSVRecords(reports) {
		for columnIndex, value := range record {
			cell, err := excelize.CoordinatesToCellName(columnIndex+1, rowIndex+1)
			if err != nil {
				return nil, fmt.Errorf("resolve cell name: %w", err)
			}
			if err := file.SetCellValue(ExportSheetName, cell, value); err != nil {
				return nil, fmt.Errorf("write cell %s: %w", cell, err)
			}
		}
	}

	return file, nil
}

func exportChecklist(checks models.TimeOfDayChecks) ExportChecklist {
	return ExportChecklist{Morning: checks.Morning, Afternoon: checks.Afternoon, Evening: checks.Evening}
}

func checkMark(checked bool) string {
	if checked {
		return "O"
	}
	return "X"
}

func formatMedications(medications map[string]models.TimeOfDayChecks) string {
	if len(medications) == 0 {
		return ""
	}

	parts := make([]string, 0, len(medications))
	for _, name := range sortedMedicationNames(medications) {
		checks := medications[name]
		taken := make([]string, 0, 3)
		if checks.Morning {
			taken = append(taken, "아침")
		}
		if checks.Afternoon {
			taken = append(taken, "점심")
		}
		if checks.Evening {
			taken = append(taken, "저녁")
		}
		if len(taken) == 0 {
			parts = append(parts, name+": 미복용")
			continue
		}
		parts = append(parts, name+": "+strings.Join(taken, "/"))
	}
	return strings.Join(parts, "; ")
}

func sortedMedicationNames(medications map[string]models.TimeOfDayChecks) []string {
	names := make([]string, 0, len(medications))
	for name := range medications {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatTimeEntries(entries []models.TimeEntry) string {
	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, formatTimeEntry(entry))
	}
	return strings.Join(parts, "; ")
}

func formatTimeEntry(entry models.TimeEntry) string {
	return fmt.Sprintf("%02d:%02d %s", entry.ActivityAt.Hour, entry.ActivityAt.Minute, entry.Description)
}
