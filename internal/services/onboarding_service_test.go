package services

import (
	"errors"
	"testing"

	"github.com/hanbit-dev/carebond/internal/models"
)

func validGuardianInput() GuardianOnboardingInput {
	return GuardianOnboardingInput{
		Name:         "김보호",
		Phone:        "010-1234-5678",
		Age:          52,
		Address:      "서울특별시 강남구 테헤란로 123",
		Relationship: "자녀",
		PatientName:  "김환자",
		PatientAge:   81,
		Medications:  []string{"Donepezil", "Aspirin"},
	}
}

func TestValidateGuardianInputPassesForValidForm(t *testing.T) {
	if fieldErrors := ValidateGuardianInput(validGuardianInput()); len(fieldErrors) != 0 {
		t.Fatalf("expected no field errors, got %v", fieldErrors)
	}
}

func TestValidateGuardianInputCollectsPerFieldMessages(t *testing.T) {
	input := validGuardianInput()
	input.Name = "홍"
	input.Phone = "01012345678"
	input.Age = 0

	fieldErrors := ValidateGuardianInput(input)
	if fieldErrors[FieldName] != MsgNameFormat {
		t.Fatalf("expected name message, got %q", fieldErrors[FieldName])
	}
	if fieldErrors[FieldPhone] != MsgPhoneFormat {
		t.Fatalf("expected phone message, got %q", fieldErrors[FieldPhone])
	}
	if fieldErrors[FieldAge] != MsgFieldRequired {
		t.Fatalf("expected required message for missing age, got %q", fieldErrors[FieldAge])
	}
}

func TestCompleteGuardianCreatesPatientWithMatchingCode(t *testing.T) {
	users := newFakeUserRepo()
	patients := newFakePatientRepo()
	guardian := models.User{Email: "guardian@example.com", Role: models.RoleGuardian, PasswordHash: "x"}
	if err := users.Create(&guardian); err != nil {
		t.Fatalf("create guardian: %v", err)
	}

	service := NewOnboardingService(users, patients)
	input := validGuardianInput()
	input.Medications = []string{" Donepezil ", "Donepezil", "", "Aspirin"}

	patient, err := service.CompleteGuardian(guardian.ID, input)
	if err != nil {
		t.Fatalf("complete guardian onboarding: %v", err)
	}

	if err := ValidateMatchingCodeFormat(patient.MatchingCode); err != nil {
		t.Fatalf("patient matching code %q invalid: %v", patient.MatchingCode, err)
	}
	expectedMedications := []string{"Donepezil", "Aspirin"}
	if len(patient.Medications) != len(expectedMedications) {
		t.Fatalf("expected medications %v, got %v", expectedMedications, patient.Medications)
	}

	saved, err := users.FindByID(guardian.ID)
	if err != nil {
		t.Fatalf("reload guardian: %v", err)
	}
	if !saved.OnboardingCompleted {
		t.Fatal("guardian must be marked onboarded")
	}
	if saved.PatientID == nil || *saved.PatientID != patient.ID {
		t.Fatal("guardian must be linked to the created patient")
	}
}

func TestCompleteGuardianRejectsWrongRoleAndRepeats(t *testing.T) {
	users := newFakeUserRepo()
	patients := newFakePatientRepo()
	caregiver := models.User{Email: "caregiver@example.com", Role: models.RoleCaregiver, PasswordHash: "x"}
	if err := users.Create(&caregiver); err != nil {
		t.Fatalf("create caregiver: %v", err)
	}

	service := NewOnboardingService(users, patients)
	if _, err := service.CompleteGuardian(caregiver.ID, validGuardianInput()); !errors.Is(err, ErrOnboardingRoleMismatch) {
		t.Fatalf("expected ErrOnboardingRoleMismatch, got %v", err)
	}

	guardian := models.User{Email: "guardian@example.com", Role: models.RoleGuardian, PasswordHash: "x"}
	if err := users.Create(&guardian); err != nil {
		t.Fatalf("create guardian: %v", err)
	}
	if _, err := service.CompleteGuardian(guardian.ID, validGuardianInput()); err != nil {
		t.Fatalf("first onboarding: %v", err)
	}
	if _, err := service.CompleteGuardian(guardian.ID, validGuardianInput()); !errors.Is(err, ErrOnboardingAlreadyCompleted) {
		t.Fatalf("expected ErrOnboardingAlreadyCompleted, got %v", err)
	}
}

func TestCompleteCaregiverJoinsByMatchingCode(t *testing.T) {
	users := newFakeUserRepo()
	patients := newFakePatientRepo()
	guardian := models.User{Email: "guardian@example.com", Role: models.RoleGuardian, PasswordHash: "x"}
	if err := users.Create(&guardian); err != nil {
		t.Fatalf("create guardian: %v", err)
	}

	service := NewOnboardingService(users, patients)
	patient, err := service.CompleteGuardian(guardian.ID, validGuardianInput())
	if err != nil {
		t.Fatalf("guardian onboarding: %v", err)
	}

	caregiver := models.User{Email: "caregiver@example.com", Role: models.RoleCaregiver, PasswordHash: "x"}
	if err := users.Create(&caregiver); err != nil {
		t.Fatalf("create caregiver: %v", err)
	}

	joined, err := service.CompleteCaregiver(caregiver.ID, CaregiverOnboardingInput{
		Name:         "박간병",
		Phone:        "010-2222-3333",
		Age:          45,
		Workplace:    "행복요양원",
		MatchingCode: " " + patient.MatchingCode + " ",
	})
	if err != nil {
		t.Fatalf("caregiver onboarding: %v", err)
	}
	if joined.ID != patient.ID {
		t.Fatalf("expected caregiver to join patient %d, got %d", patient.ID, joined.ID)
	}

	saved, err := users.FindByID(caregiver.ID)
	if err != nil {
		t.Fatalf("reload caregiver: %v", err)
	}
	if saved.Workplace != "행복요양원" {
		t.Fatalf("expected workplace saved, got %q", saved.Workplace)
	}
}

func TestCompleteCaregiverRejectsBadMatchingCodes(t *testing.T) {
	users := newFakeUserRepo()
	patients := newFakePatientRepo()
	caregiver := models.User{Email: "caregiver@example.com", Role: models.RoleCaregiver, PasswordHash: "x"}
	if err := users.Create(&caregiver); err != nil {
		t.Fatalf("create caregiver: %v", err)
	}

	service := NewOnboardingService(users, patients)
	input := CaregiverOnboardingInput{Name: "박간병", Phone: "010-2222-3333", Age: 45, Workplace: "행복요양원"}

	input.MatchingCode = "oops"
	if _, err := service.CompleteCaregiver(caregiver.ID, input); !errors.Is(err, ErrMatchingCodeInvalid) {
		t.Fatalf("expected ErrMatchingCodeInvalid, got %v", err)
	}

	input.MatchingCode = "AAAA2222"
	if _, err := service.CompleteCaregiver(caregiver.ID, input); !errors.Is(err, ErrMatchingCodeNotFound) {
		t.Fatalf("expected ErrMatchingCodeNotFound, got %v", err)
	}
}
