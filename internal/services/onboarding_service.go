package services

import (
	"errors"
	"strconv"
	"strings"

	"github.com/hanbit-dev/carebond/internal/models"
	"gorm.io/gorm"
)

var (
	ErrOnboardingAlreadyCompleted = errors.New("onboarding already completed")
	ErrOnboardingRoleMismatch     = errors.New("onboarding form does not match user type")
)

type OnboardingUserRepository interface {
	FindByID(userID uint) (models.User, error)
	Save(user *models.User) error
}

type OnboardingPatientRepository interface {
	Create(patient *models.Patient) error
	FindByMatchingCode(code string) (models.Patient, error)
}

type OnboardingService struct {
	users    OnboardingUserRepository
	patients OnboardingPatientRepository
}

func NewOnboardingService(users OnboardingUserRepository, patients OnboardingPatientRepository) *OnboardingService {
	return &OnboardingService{users: users, patients: patients}
}

type GuardianOnboardingInput struct {
	Name         string
	Phone        string
	Age          int
	Address      string
	Relationship string
	PatientName  string
	PatientAge   int
	Medications  []string
}

type CaregiverOnboardingInput struct {
	Name         string
	Phone        string
	Age          int
	Address      string
	Workplace    string
	MatchingCode string
}

type AcquaintanceOnboardingInput struct {
	Name         string
	Phone        string
	Age          int
	Relationship string
	MatchingCode string
}

// ValidateGuardianInput runs every guardian form field through the rule
// table and returns per-field inline messages; an empty map means the form
// passes.
func ValidateGuardianInput(input GuardianOnboardingInput) map[string]string {
	fieldErrors := map[string]string{}
	collectFieldError(fieldErrors, FormGuardian, FieldName, input.Name)
	collectFieldError(fieldErrors, FormGuardian, FieldPhone, input.Phone)
	collectFieldError(fieldErrors, FormGuardian, FieldAge, ageFieldValue(input.Age))
	collectFieldError(fieldErrors, FormGuardian, FieldAddress, input.Address)
	collectFieldError(fieldErrors, FormGuardian, FieldRelationship, input.Relationship)
	collectFieldError(fieldErrors, FormGuardian, FieldPatientName, input.PatientName)
	collectFieldError(fieldErrors, FormGuardian, FieldPatientAge, ageFieldValue(input.PatientAge))
	return fieldErrors
}

func ValidateCaregiverInput(input CaregiverOnboardingInput) map[string]string {
	fieldErrors := map[string]string{}
	collectFieldError(fieldErrors, FormCaregiver, FieldName, input.Name)
	collectFieldError(fieldErrors, FormCaregiver, FieldPhone, input.Phone)
	collectFieldError(fieldErrors, FormCaregiver, FieldAge, ageFieldValue(input.Age))
	collectFieldError(fieldErrors, FormCaregiver, FieldAddress, input.Address)
	collectFieldError(fieldErrors, FormCaregiver, FieldWorkplace, input.Workplace)
	collectFieldError(fieldErrors, FormCaregiver, FieldMatchingCode, input.MatchingCode)
	return fieldErrors
}

func ValidateAcquaintanceInput(input AcquaintanceOnboardingInput) map[string]string {
	fieldErrors := map[string]string{}
	collectFieldError(fieldErrors, FormAcquaintance, FieldName, input.Name)
	collectFieldError(fieldErrors, FormAcquaintance, FieldPhone, input.Phone)
	collectFieldError(fieldErrors, FormAcquaintance, FieldAge, ageFieldValue(input.Age))
	collectFieldError(fieldErrors, FormAcquaintance, FieldRelationship, input.Relationship)
	collectFieldError(fieldErrors, FormAcquaintance, FieldMatchingCode, input.MatchingCode)
	return fieldErrors
}

// CompleteGuardian saves the guardian profile, creates the patient record
// with its medication list and mints the matching code for the circle.
func (service *OnboardingService) CompleteGuardian(userID uint, input GuardianOnboardingInput) (models.Patient, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.Patient{}, err
	}
	if user.Role != models.RoleGuardian {
		return models.Patient{}, ErrOnboardingRoleMismatch
	}
	if user.OnboardingCompleted {
		return models.Patient{}, ErrOnboardingAlreadyCompleted
	}

	matchingCode, err := NewMatchingCode()
	if err != nil {
		return models.Patient{}, err
	}

	patient := models.Patient{
		GuardianID:   userID,
		Name:         strings.TrimSpace(input.PatientName),
		Age:          input.PatientAge,
		MatchingCode: matchingCode,
		Medications:  normalizeMedicationNames(input.Medications),
	}
	if err := service.patients.Create(&patient); err != nil {
		return models.Patient{}, err
	}

	applyProfileFields(&user, input.Name, input.Phone, input.Age, input.Address)
	user.Relationship = strings.TrimSpace(input.Relationship)
	user.PatientID = &patient.ID
	user.OnboardingCompleted = true
	if err := service.users.Save(&user); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

// CompleteCaregiver joins the caregiver to the patient circle identified by
// the matching code and saves the profile.
func (service *OnboardingService) CompleteCaregiver(userID uint, input CaregiverOnboardingInput) (models.Patient, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.Patient{}, err
	}
	if user.Role != models.RoleCaregiver {
		return models.Patient{}, ErrOnboardingRoleMismatch
	}
	if user.OnboardingCompleted {
		return models.Patient{}, ErrOnboardingAlreadyCompleted
	}

	patient, err := service.resolvePatientByCode(input.MatchingCode)
	if err != nil {
		return models.Patient{}, err
	}

	applyProfileFields(&user, input.Name, input.Phone, input.Age, input.Address)
	user.Workplace = strings.TrimSpace(input.Workplace)
	user.PatientID = &patient.ID
	user.OnboardingCompleted = true
	if err := service.users.Save(&user); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (service *OnboardingService) CompleteAcquaintance(userID uint, input AcquaintanceOnboardingInput) (models.Patient, error) {
	user, err := service.users.FindByID(userID)
	if err != nil {
		return models.Patient{}, err
	}
	if user.Role != models.RoleAcquaintance {
		return models.Patient{}, ErrOnboardingRoleMismatch
	}
	if user.OnboardingCompleted {
		return models.Patient{}, ErrOnboardingAlreadyCompleted
	}

	patient, err := service.resolvePatientByCode(input.MatchingCode)
	if err != nil {
		return models.Patient{}, err
	}

	applyProfileFields(&user, input.Name, input.Phone, input.Age, "")
	user.Relationship = strings.TrimSpace(input.Relationship)
	user.PatientID = &patient.ID
	user.OnboardingCompleted = true
	if err := service.users.Save(&user); err != nil {
		return models.Patient{}, err
	}

	return patient, nil
}

func (service *OnboardingService) resolvePatientByCode(rawCode string) (models.Patient, error) {
	code := NormalizeMatchingCode(rawCode)
	if err := ValidateMatchingCodeFormat(code); err != nil {
		return models.Patient{}, err
	}

	patient, err := service.patients.FindByMatchingCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Patient{}, ErrMatchingCodeNotFound
		}
		return models.Patient{}, err
	}
	return patient, nil
}

func applyProfileFields(user *models.User, name string, phone string, age int, address string) {
	user.Name = strings.TrimSpace(name)
	user.Phone = strings.TrimSpace(phone)
	user.Age = age
	user.Address = strings.TrimSpace(address)
}

func normalizeMedicationNames(names []string) []string {
	normalized := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		if trimmed == "" {
			continue
		}
		if _, duplicate := seen[trimmed]; duplicate {
			continue
		}
		seen[trimmed] = struct{}{}
		normalized = append(normalized, trimmed)
	}
	return normalized
}

func collectFieldError(fieldErrors map[string]string, form FormType, field string, value string) {
	if message := ValidateField(form, field, value); message != "" {
		fieldErrors[field] = message
	}
}

func ageFieldValue(age int) string {
	if age == 0 {
		return ""
	}
	return strconv.Itoa(age)
}
