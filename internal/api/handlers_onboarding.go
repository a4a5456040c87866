package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
	"github.com/hanbit-dev/carebond/internal/services"
)

func (handler *Handler) OnboardingStatus(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	return c.JSON(fiber.Map{
		"completed": user.OnboardingCompleted,
		"role":      user.Role,
		"fields":    services.FormFields(onboardingFormForRole(user.Role)),
	})
}

// OnboardingOptions serves the option catalogs the client renders as
// pickers so they stay server-driven.
func (handler *Handler) OnboardingOptions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"relationships": services.RelationshipOptions(),
	})
}

// ValidateOnboardingField checks a single field so the client can show
// inline messages while the user types.
func (handler *Handler) ValidateOnboardingField(c *fiber.Ctx) error {
	var input fieldCheckInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	message := services.ValidateField(services.FormType(input.Form), input.Field, input.Value)
	return c.JSON(fiber.Map{
		"valid":   message == "",
		"message": message,
	})
}

func (handler *Handler) OnboardGuardian(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	var payload guardianOnboardingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	input := services.GuardianOnboardingInput{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Age:          payload.Age,
		Address:      payload.Address,
		Relationship: payload.Relationship,
		PatientName:  payload.PatientName,
		PatientAge:   payload.PatientAge,
		Medications:  payload.Medications,
	}
	if fieldErrors := services.ValidateGuardianInput(input); len(fieldErrors) > 0 {
		return validationFailed(c, fieldErrors)
	}

	patient, err := handler.onboardingService.CompleteGuardian(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return handler.onboardingCompletedResponse(c, user.ID, patient)
}

func (handler *Handler) OnboardCaregiver(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	var payload caregiverOnboardingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	input := services.CaregiverOnboardingInput{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Age:          payload.Age,
		Address:      payload.Address,
		Workplace:    payload.Workplace,
		MatchingCode: payload.MatchingCode,
	}
	if fieldErrors := services.ValidateCaregiverInput(input); len(fieldErrors) > 0 {
		return validationFailed(c, fieldErrors)
	}

	patient, err := handler.onboardingService.CompleteCaregiver(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return handler.onboardingCompletedResponse(c, user.ID, patient)
}

func (handler *Handler) OnboardAcquaintance(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	var payload acquaintanceOnboardingPayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	input := services.AcquaintanceOnboardingInput{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Age:          payload.Age,
		Relationship: payload.Relationship,
		MatchingCode: payload.MatchingCode,
	}
	if fieldErrors := services.ValidateAcquaintanceInput(input); len(fieldErrors) > 0 {
		return validationFailed(c, fieldErrors)
	}

	patient, err := handler.onboardingService.CompleteAcquaintance(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}

	return handler.onboardingCompletedResponse(c, user.ID, patient)
}

func (handler *Handler) onboardingCompletedResponse(c *fiber.Ctx, userID uint, patient models.Patient) error {
	updated, err := handler.authService.FindByID(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{
		"user":    userView(&updated),
		"patient": patientView(patient, &updated),
	})
}

func onboardingFormForRole(role string) services.FormType {
	switch role {
	case models.RoleCaregiver:
		return services.FormCaregiver
	case models.RoleAcquaintance:
		return services.FormAcquaintance
	default:
		return services.FormGuardian
	}
}
