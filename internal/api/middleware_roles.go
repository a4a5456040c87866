package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/models"
)

var (
	errUnauthorized     = errors.New("no authenticated user in request context")
	errPatientNotLinked = errors.New("user has no linked patient")
)

func (handler *Handler) GuardianOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	if user.Role != models.RoleGuardian {
		return apiError(c, fiber.StatusForbidden, "error.role_mismatch")
	}
	return c.Next()
}

func (handler *Handler) CaregiverOnly(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	if user.Role != models.RoleCaregiver {
		return apiError(c, fiber.StatusForbidden, "error.role_mismatch")
	}
	return c.Next()
}

// requirePatient resolves the patient linked to the signed-in user. The
// returned error is a sentinel for serviceError, not a written response.
func (handler *Handler) requirePatient(c *fiber.Ctx) (*models.User, uint, error) {
	user, ok := currentUser(c)
	if !ok {
		return nil, 0, errUnauthorized
	}
	if user.PatientID == nil || *user.PatientID == 0 {
		return nil, 0, errPatientNotLinked
	}
	return user, *user.PatientID, nil
}
