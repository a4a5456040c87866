package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/services"
	"gorm.io/gorm"
)

func apiError(c *fiber.Ctx, status int, key string) error {
	return c.Status(status).JSON(fiber.Map{
		"error":   key,
		"message": translateMessage(currentMessages(c), key),
	})
}

// validationFailed returns field-level inline messages alongside the
// generic validation error so the client can render them next to inputs.
func validationFailed(c *fiber.Ctx, fieldErrors map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":       "error.validation_failed",
		"message":     translateMessage(currentMessages(c), "error.validation_failed"),
		"fieldErrors": fieldErrors,
	})
}

// serviceError maps domain sentinel errors onto HTTP statuses and locale
// keys; anything unmapped is an internal error.
func serviceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errUnauthorized):
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	case errors.Is(err, errPatientNotLinked):
		return apiError(c, fiber.StatusForbidden, "error.patient_not_linked")
	case errors.Is(err, services.ErrAuthCredentialsInvalid):
		return apiError(c, fiber.StatusUnauthorized, "error.invalid_credentials")
	case errors.Is(err, services.ErrEmailAlreadyRegistered):
		return apiError(c, fiber.StatusConflict, "error.email_taken")
	case errors.Is(err, services.ErrWeakPassword):
		return apiError(c, fiber.StatusBadRequest, "error.weak_password")
	case errors.Is(err, services.ErrOnboardingAlreadyCompleted):
		return apiError(c, fiber.StatusConflict, "error.onboarding_completed")
	case errors.Is(err, services.ErrOnboardingRoleMismatch):
		return apiError(c, fiber.StatusForbidden, "error.role_mismatch")
	case errors.Is(err, services.ErrMatchingCodeInvalid):
		return apiError(c, fiber.StatusBadRequest, "error.matching_code_format")
	case errors.Is(err, services.ErrMatchingCodeNotFound):
		return apiError(c, fiber.StatusNotFound, "error.matching_code_not_found")
	case errors.Is(err, services.ErrReportNotFound):
		return apiError(c, fiber.StatusNotFound, "error.report_not_found")
	case errors.Is(err, services.ErrReportDateRequired):
		return apiError(c, fiber.StatusBadRequest, "error.report_date_required")
	case errors.Is(err, services.ErrEntryDescriptionRequired):
		return apiError(c, fiber.StatusBadRequest, "error.entry_description_required")
	case errors.Is(err, services.ErrUnknownActivity):
		return apiError(c, fiber.StatusBadRequest, "error.unknown_activity")
	case errors.Is(err, services.ErrUnknownTimeOfDay):
		return apiError(c, fiber.StatusBadRequest, "error.unknown_time_of_day")
	case errors.Is(err, services.ErrUnknownMedication):
		return apiError(c, fiber.StatusBadRequest, "error.unknown_medication")
	case errors.Is(err, services.ErrGuardianRequestNotFound):
		return apiError(c, fiber.StatusNotFound, "error.guardian_request_not_found")
	case errors.Is(err, services.ErrRequestTextRequired):
		return apiError(c, fiber.StatusBadRequest, "error.request_text_required")
	case errors.Is(err, services.ErrMedicationAlreadyListed):
		return apiError(c, fiber.StatusConflict, "error.medication_listed")
	case errors.Is(err, services.ErrMedicationNotListed):
		return apiError(c, fiber.StatusNotFound, "error.medication_not_listed")
	case errors.Is(err, services.ErrMessageTextRequired):
		return apiError(c, fiber.StatusBadRequest, "error.message_text_required")
	case errors.Is(err, services.ErrMessageRoleNotAllowed):
		return apiError(c, fiber.StatusForbidden, "error.message_role_not_allowed")
	case errors.Is(err, services.ErrMessageNotOwned):
		return apiError(c, fiber.StatusForbidden, "error.message_not_owned")
	case errors.Is(err, services.ErrPhotoDataInvalid):
		return apiError(c, fiber.StatusBadRequest, "error.photo_data_invalid")
	case errors.Is(err, services.ErrPhotoTooLarge):
		return apiError(c, fiber.StatusRequestEntityTooLarge, "error.photo_too_large")
	case errors.Is(err, services.ErrPhotoTypeNotAllowed):
		return apiError(c, fiber.StatusUnsupportedMediaType, "error.photo_type_not_allowed")
	case errors.Is(err, services.ErrPhotoNotFound):
		return apiError(c, fiber.StatusNotFound, "error.photo_not_found")
	case errors.Is(err, services.ErrPhotoDeleteNotPermitted):
		return apiError(c, fiber.StatusForbidden, "error.photo_delete_not_permitted")
	case errors.Is(err, services.ErrExportRangeInvalid):
		return apiError(c, fiber.StatusBadRequest, "error.export_range_invalid")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apiError(c, fiber.StatusNotFound, "error.not_found")
	default:
		return apiError(c, fiber.StatusInternalServerError, "error.internal")
	}
}

func translateMessage(messages map[string]string, key string) string {
	if value, ok := messages[key]; ok && strings.TrimSpace(value) != "" {
		return value
	}
	return key
}
