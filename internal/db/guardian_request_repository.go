package db

import (
	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type GuardianRequestRepository struct {
	database *gorm.DB
}

func NewGuardianRequestRepository(database *gorm.DB) *GuardianRequestRepository {
	return &GuardianRequestRepository{database: database}
}

func (repo *GuardianRequestRepository) Create(record *models.GuardianRequestRecord) error {
	return repo.database.Create(record).Error
}

func (repo *GuardianRequestRepository) ListByPatient(patientID uint) ([]models.GuardianRequestRecord, error) {
	records := make([]models.GuardianRequestRecord, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *GuardianRequestRepository) Delete(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.GuardianRequestRecord{}).Error
}
