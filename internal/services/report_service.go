package services

import (
	"errors"
	"time"

	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

var ErrReportDateRequired = errors.New("report date is required")

type ReportRepository interface {
	ListByPatient(patientID uint) ([]models.CareReport, error)
	FindByID(id string) (models.CareReport, error)
	Upsert(report *models.CareReport) error
	Delete(id string) error
}

type ReportPatientReader interface {
	FindByID(patientID uint) (models.Patient, error)
}

type ReportRequestReader interface {
	ListByPatient(patientID uint) ([]models.GuardianRequestRecord, error)
}

type ReportService struct {
	reports  ReportRepository
	patients ReportPatientReader
	requests ReportRequestReader
}

func NewReportService(reports ReportRepository, patients ReportPatientReader, requests ReportRequestReader) *ReportService {
	return &ReportService{reports: reports, patients: patients, requests: requests}
}

// BuildTemplate prepares an unsaved report for the given day: the patient's
// current medication list becomes the report's fixed medication set and the
// guardian's standing requests are copied in unacknowledged.
func (service *ReportService) BuildTemplate(patientID uint, authorID uint, date time.Time) (models.CareReport, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return models.CareReport{}, err
	}

	report := NewCareReport(date, patient.Medications)
	report.PatientID = patientID
	report.AuthorID = authorID

	records, err := service.requests.ListByPatient(patientID)
	if err != nil {
		return models.CareReport{}, err
	}
	for _, record := range records {
		report.GuardianRequests = append(report.GuardianRequests, models.GuardianRequest{
			ID:      record.ID,
			Request: record.Request,
		})
	}

	return report, nil
}

// ListForPatient returns the patient's reports newest date first. Rows are
// replayed through a ReportStore so duplicates by id collapse to the latest
// version and ordering semantics match the in-memory collection.
func (service *ReportService) ListForPatient(patientID uint) ([]models.CareReport, error) {
	rows, err := service.reports.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}

	store := NewReportStore()
	for _, row := range rows {
		store.Upsert(row)
	}
	return store.List(ReportSortDateDesc), nil
}

func (service *ReportService) Get(id string) (models.CareReport, error) {
	report, err := service.reports.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CareReport{}, ErrReportNotFound
		}
		return models.CareReport{}, err
	}
	return report, nil
}

// Save persists the whole aggregate, replacing any prior version with the
// same id. No field-level merge happens here; concurrent saves of the same
// report are last-write-wins.
func (service *ReportService) Save(report models.CareReport) (models.CareReport, error) {
	if report.Date.IsZero() {
		return models.CareReport{}, ErrReportDateRequired
	}
	if report.ID == "" {
		fresh := NewCareReport(report.Date, nil)
		report.ID = fresh.ID
	}
	normalizeChecklists(&report)

	if err := service.reports.Upsert(&report); err != nil {
		return models.CareReport{}, err
	}
	return report, nil
}

func (service *ReportService) Delete(id string) error {
	return service.reports.Delete(id)
}

func (service *ReportService) AddEntry(reportID string, at models.ClockTime, description string) (models.CareReport, error) {
	return service.mutate(reportID, func(report models.CareReport) (models.CareReport, error) {
		return AddTimeEntry(report, at, description)
	})
}

func (service *ReportService) ToggleActivityCheck(reportID string, category string, timeOfDay string) (models.CareReport, error) {
	return service.mutate(reportID, func(report models.CareReport) (models.CareReport, error) {
		return ToggleActivity(report, category, timeOfDay)
	})
}

func (service *ReportService) ToggleMedicationCheck(reportID string, medicationName string, timeOfDay string) (models.CareReport, error) {
	return service.mutate(reportID, func(report models.CareReport) (models.CareReport, error) {
		return ToggleMedication(report, medicationName, timeOfDay)
	})
}

func (service *ReportService) SetNote(reportID string, text string) (models.CareReport, error) {
	return service.mutate(reportID, func(report models.CareReport) (models.CareReport, error) {
		return SetSpecialNote(report, text), nil
	})
}

func (service *ReportService) AcknowledgeRequest(reportID string, requestID string) (models.CareReport, error) {
	return service.mutate(reportID, func(report models.CareReport) (models.CareReport, error) {
		return AcknowledgeGuardianRequest(report, requestID)
	})
}

func (service *ReportService) mutate(reportID string, op func(models.CareReport) (models.CareReport, error)) (models.CareReport, error) {
	report, err := service.Get(reportID)
	if err != nil {
		return models.CareReport{}, err
	}

	next, err := op(report)
	if err != nil {
		return models.CareReport{}, err
	}

	if err := service.reports.Upsert(&next); err != nil {
		return models.CareReport{}, err
	}
	return next, nil
}

// normalizeChecklists guarantees the aggregate invariant that every activity
// category exists with all three time-of-day slots even when a client sends
// a partial payload.
func normalizeChecklists(report *models.CareReport) {
	if report.Activities == nil {
		report.Activities = make(map[string]models.TimeOfDayChecks, 2)
	}
	for _, category := range models.ActivityCategories() {
		if _, ok := report.Activities[category]; !ok {
			report.Activities[category] = models.TimeOfDayChecks{}
		}
	}
	if report.Medications == nil {
		report.Medications = make(map[string]models.TimeOfDayChecks)
	}
	if report.TimeEntries == nil {
		report.TimeEntries = make([]models.TimeEntry, 0)
	}
	if report.GuardianRequests == nil {
		report.GuardianRequests = make([]models.GuardianRequest, 0)
	}
}
