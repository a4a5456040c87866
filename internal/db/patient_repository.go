package db

import (
	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type PatientRepository struct {
	database *gorm.DB
}

func NewPatientRepository(database *gorm.DB) *PatientRepository {
	return &PatientRepository{database: database}
}

func (repo *PatientRepository) FindByID(patientID uint) (models.Patient, error) {
	var patient models.Patient
	if err := repo.database.First(&patient, patientID).Error; err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

// FindByMatchingCode expects an already normalized code; matching codes are
// stored upper case so the comparison is exact.
func (repo *PatientRepository) FindByMatchingCode(code string) (models.Patient, error) {
	var patient models.Patient
	if err := repo.database.Where("matching_code = ?", code).First(&patient).Error; err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (repo *PatientRepository) Create(patient *models.Patient) error {
	return repo.database.Create(patient).Error
}

func (repo *PatientRepository) Save(patient *models.Patient) error {
	return repo.database.Save(patient).Error
}
