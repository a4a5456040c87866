package services

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/hanbit-dev/carebond/internal/security"
	"gorm.io/gorm"
)

var (
	ErrPhotoDataInvalid        = errors.New("photo data is not valid base64")
	ErrPhotoTooLarge           = errors.New("photo exceeds the size limit")
	ErrPhotoTypeNotAllowed     = errors.New("photo content type not allowed")
	ErrPhotoNotFound           = errors.New("photo not found")
	ErrPhotoDeleteNotPermitted = errors.New("photo may only be deleted by its uploader or the guardian")
)

const maxPhotoBytes = 10 << 20

const photoTokenLength = 24
const photoTokenAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

type PhotoRepository interface {
	ListByPatient(patientID uint) ([]models.Photo, error)
	FindByID(id string) (models.Photo, error)
	Create(photo *models.Photo) error
	Delete(id string) error
}

type PhotoService struct {
	photos PhotoRepository
}

func NewPhotoService(photos PhotoRepository) *PhotoService {
	return &PhotoService{photos: photos}
}

// Upload decodes the client's base64 payload and stores the image. The
// client sends base64 because the mobile gallery reads files that way; a
// leading data-URL prefix is tolerated and stripped.
func (service *PhotoService) Upload(patientID uint, uploaderID uint, base64Data string, contentType string, caption string) (models.Photo, error) {
	if !isAllowedPhotoType(contentType) {
		return models.Photo{}, ErrPhotoTypeNotAllowed
	}

	payload := base64Data
	if index := strings.Index(payload, ","); index >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[index+1:]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(payload))
	if err != nil {
		return models.Photo{}, ErrPhotoDataInvalid
	}
	if len(data) == 0 {
		return models.Photo{}, ErrPhotoDataInvalid
	}
	if len(data) > maxPhotoBytes {
		return models.Photo{}, ErrPhotoTooLarge
	}

	token, err := security.RandomString(photoTokenLength, photoTokenAlphabet)
	if err != nil {
		return models.Photo{}, err
	}

	photo := models.Photo{
		ID:          uuid.NewString(),
		PatientID:   patientID,
		UploaderID:  uploaderID,
		Token:       token,
		ContentType: contentType,
		Caption:     strings.TrimSpace(caption),
		Data:        data,
		CreatedAt:   time.Now().UTC(),
	}
	if err := service.photos.Create(&photo); err != nil {
		return models.Photo{}, err
	}
	return photo, nil
}

func (service *PhotoService) ListForPatient(patientID uint) ([]models.Photo, error) {
	return service.photos.ListByPatient(patientID)
}

func (service *PhotoService) Get(photoID string) (models.Photo, error) {
	photo, err := service.photos.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Photo{}, ErrPhotoNotFound
		}
		return models.Photo{}, err
	}
	return photo, nil
}

// Delete removes a photo when the requester uploaded it or is a guardian.
func (service *PhotoService) Delete(photoID string, requester models.User) error {
	photo, err := service.Get(photoID)
	if err != nil {
		return err
	}
	if photo.UploaderID != requester.ID && requester.Role != models.RoleGuardian {
		return ErrPhotoDeleteNotPermitted
	}
	return service.photos.Delete(photoID)
}

func isAllowedPhotoType(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}
