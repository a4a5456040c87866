package services

import (
	"errors"

	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

var ErrMessageNotOwned = errors.New("message belongs to another user")

type MessageRepository interface {
	ListByPatient(patientID uint) ([]models.Message, error)
	FindByID(id string) (models.Message, error)
	Create(message *models.Message) error
	Delete(id string) error
}

type MessageService struct {
	messages MessageRepository
}

func NewMessageService(messages MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Thread returns the patient's conversation in send order.
func (service *MessageService) Thread(patientID uint) ([]models.Message, error) {
	rows, err := service.messages.ListByPatient(patientID)
	if err != nil {
		return nil, err
	}
	return NewMessageThreadFrom(rows).List(), nil
}

// Send appends a message on behalf of the author. Only guardians and
// caregivers may post; the thread model enforces the role set.
func (service *MessageService) Send(patientID uint, author models.User, text string) (models.Message, error) {
	thread := NewMessageThread()
	message, err := thread.Append(text, author.Role)
	if err != nil {
		return models.Message{}, err
	}

	message.PatientID = patientID
	message.AuthorID = author.ID
	if err := service.messages.Create(&message); err != nil {
		return models.Message{}, err
	}
	return message, nil
}

// Delete removes the requester's own message. A missing id is a no-op so
// repeated deletes stay idempotent.
func (service *MessageService) Delete(messageID string, requesterID uint) error {
	message, err := service.messages.FindByID(messageID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if message.AuthorID != requesterID {
		return ErrMessageNotOwned
	}
	return service.messages.Delete(messageID)
}
