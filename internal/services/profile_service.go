package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hanbit-dev/carebond/internal/models"
)

var (
	ErrMedicationAlreadyListed = errors.New("medication already on the list")
	ErrMedicationNotListed     = errors.New("medication not on the list")
	ErrRequestTextRequired     = errors.New("request text is required")
)

type ProfileUserRepository interface {
	FindByID(userID uint) (models.User, error)
	Save(user *models.User) error
}

type ProfilePatientRepository interface {
	FindByID(patientID uint) (models.Patient, error)
	Save(patient *models.Patient) error
}

type GuardianRequestRepository interface {
	Create(record *models.GuardianRequestRecord) error
	ListByPatient(patientID uint) ([]models.GuardianRequestRecord, error)
	Delete(id string) error
}

type ProfileService struct {
	users    ProfileUserRepository
	patients ProfilePatientRepository
	requests GuardianRequestRepository
}

func NewProfileService(users ProfileUserRepository, patients ProfilePatientRepository, requests GuardianRequestRepository) *ProfileService {
	return &ProfileService{users: users, patients: patients, requests: requests}
}

type ProfileUpdateInput struct {
	Name         string
	Phone        string
	Age          int
	Address      string
	Workplace    string
	Relationship string
}

// ValidateProfileUpdate reuses the onboarding rule table for the user's
// form so profile edits obey the same inline messages.
func ValidateProfileUpdate(role string, input ProfileUpdateInput) map[string]string {
	form := formForRole(role)
	fieldErrors := map[string]string{}
	collectFieldError(fieldErrors, form, FieldName, input.Name)
	collectFieldError(fieldErrors, form, FieldPhone, input.Phone)
	collectFieldError(fieldErrors, form, FieldAge, ageFieldValue(input.Age))
	if form == FormGuardian || form == FormCaregiver {
		collectFieldError(fieldErrors, form, FieldAddress, input.Address)
	}
	if form == FormCaregiver {
		collectFieldError(fieldErrors, form, FieldWorkplace, input.Workplace)
	}
	if form == FormGuardian || form == FormAcquaintance {
		collectFieldError(fieldErrors, form, FieldRelationship, input.Relationship)
	}
	return fieldErrors
}

func (service *ProfileService) UpdateProfile(userID uint, input ProfileUpdateInput) (models.User, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}

	applyProfileFields(&user, input.Name, input.Phone, input.Age, input.Address)
	if user.Role == models.RoleCaregiver {
		user.Workplace = strings.TrimSpace(input.Workplace)
	}
	if user.Role == models.RoleGuardian || user.Role == models.RoleAcquaintance {
		user.Relationship = strings.TrimSpace(input.Relationship)
	}
	if err := service.users.Save(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// AddMedication extends the patient's medication list. Existing reports keep
// their fixed medication set; only reports created afterwards see the change.
func (service *ProfileService) AddMedication(patientID uint, name string) (models.Patient, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return models.Patient{}, ErrMedicationNotListed
	}

	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return models.Patient{}, err
	}
	for _, listed := range patient.Medications {
		if listed == trimmed {
			return models.Patient{}, ErrMedicationAlreadyListed
		}
	}

	patient.Medications = append(patient.Medications, trimmed)
	if err := service.patients.Save(&patient); err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (service *ProfileService) RemoveMedication(patientID uint, name string) (models.Patient, error) {
	patient, err := service.patients.FindByID(patientID)
	if err != nil {
		return models.Patient{}, err
	}

	kept := make([]string, 0, len(patient.Medications))
	removed := false
	for _, listed := range patient.Medications {
		if listed == strings.TrimSpace(name) {
			removed = true
			continue
		}
		kept = append(kept, listed)
	}
	if !removed {
		return models.Patient{}, ErrMedicationNotListed
	}

	patient.Medications = kept
	if err := service.patients.Save(&patient); err != nil {
		return models.Patient{}, err
	}
	return patient, nil
}

func (service *ProfileService) CreateGuardianRequest(patientID uint, request string) (models.GuardianRequestRecord, error) {
	if strings.TrimSpace(request) == "" {
		return models.GuardianRequestRecord{}, ErrRequestTextRequired
	}

	record := models.GuardianRequestRecord{
		ID:        uuid.NewString(),
		PatientID: patientID,
		Request:   strings.TrimSpace(request),
		CreatedAt: time.Now().UTC(),
	}
	if err := service.requests.Create(&record); err != nil {
		return models.GuardianRequestRecord{}, err
	}
	return record, nil
}

func (service *ProfileService) ListGuardianRequests(patientID uint) ([]models.GuardianRequestRecord, error) {
	return service.requests.ListByPatient(patientID)
}

func (service *ProfileService) DeleteGuardianRequest(id string) error {
	return service.requests.Delete(id)
}

func formForRole(role string) FormType {
	switch role {
	case models.RoleCaregiver:
		return FormCaregiver
	case models.RoleAcquaintance:
		return FormAcquaintance
	default:
		return FormGuardian
	}
}
