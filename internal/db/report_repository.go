package db

import (
	"time"

	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type ReportRepository struct {
	database *gorm.DB
}

func NewReportRepository(database *gorm.DB) *ReportRepository {
	return &ReportRepository{database: database}
}

// ListByPatient returns reports in creation order; callers that need
// newest-first ordering sort the result themselves.
func (repo *ReportRepository) ListByPatient(patientID uint) ([]models.CareReport, error) {
	reports := make([]models.CareReport, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at ASC, id ASC").
		Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) ListByPatientRange(patientID uint, fromStart *time.Time, toEnd *time.Time) ([]models.CareReport, error) {
	query := repo.database.Model(&models.CareReport{}).Where("patient_id = ?", patientID)
	if fromStart != nil {
		query = query.Where("date >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("date < ?", *toEnd)
	}

	reports := make([]models.CareReport, 0)
	if err := query.Order("date ASC, id ASC").Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *ReportRepository) FindByID(id string) (models.CareReport, error) {
	var report models.CareReport
	if err := repo.database.Where("id = ?", id).First(&report).Error; err != nil {
		return models.CareReport{}, err
	}
	return report, nil
}

// Upsert writes the whole report row; a save for an existing id replaces
// every stored field.
func (repo *ReportRepository) Upsert(report *models.CareReport) error {
	return repo.database.Save(report).Error
}

func (repo *ReportRepository) Delete(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.CareReport{}).Error
}
