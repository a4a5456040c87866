package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	c.Locals(contextUserKey, user)
	if !user.OnboardingCompleted && !isOnboardingPath(c.Path()) {
		if c.Path() == "/api/auth/logout" || c.Path() == "/api/auth/me" {
			return c.Next()
		}
		return apiError(c, fiber.StatusForbidden, "error.onboarding_required")
	}

	return c.Next()
}

func isOnboardingPath(path string) bool {
	cleanPath := strings.TrimSpace(path)
	return cleanPath == "/api/onboarding" || strings.HasPrefix(cleanPath, "/api/onboarding/")
}
