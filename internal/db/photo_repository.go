package db

import (
	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	database *gorm.DB
}

func NewPhotoRepository(database *gorm.DB) *PhotoRepository {
	return &PhotoRepository{database: database}
}

// ListByPatient loads gallery metadata without the image bytes; the bytes
// are fetched per photo through FindByID.
func (repo *PhotoRepository) ListByPatient(patientID uint) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	if err := repo.database.
		Select("id", "patient_id", "uploader_id", "token", "content_type", "caption", "created_at").
		Where("patient_id = ?", patientID).
		Order("created_at DESC, id DESC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) FindByID(id string) (models.Photo, error) {
	var photo models.Photo
	if err := repo.database.Where("id = ?", id).First(&photo).Error; err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (repo *PhotoRepository) Create(photo *models.Photo) error {
	return repo.database.Create(photo).Error
}

func (repo *PhotoRepository) Delete(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.Photo{}).Error
}
