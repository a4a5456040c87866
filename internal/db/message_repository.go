package db

import (
	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	database *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{database: database}
}

func (repo *MessageRepository) ListByPatient(patientID uint) ([]models.Message, error) {
	messages := make([]models.Message, 0)
	if err := repo.database.
		Where("patient_id = ?", patientID).
		Order("sent_at ASC, id ASC").
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *MessageRepository) FindByID(id string) (models.Message, error) {
	var message models.Message
	if err := repo.database.Where("id = ?", id).First(&message).Error; err != nil {
		return models.Message{}, err
	}
	return message, nil
}

func (repo *MessageRepository) Create(message *models.Message) error {
	return repo.database.Create(message).Error
}

func (repo *MessageRepository) Delete(id string) error {
	return repo.database.Where("id = ?", id).Delete(&models.Message{}).Error
}
