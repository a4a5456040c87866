package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}
	return c.JSON(fiber.Map{"user": userView(user)})
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "error.unauthorized")
	}

	var payload profileUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	input := services.ProfileUpdateInput{
		Name:         payload.Name,
		Phone:        payload.Phone,
		Age:          payload.Age,
		Address:      payload.Address,
		Workplace:    payload.Workplace,
		Relationship: payload.Relationship,
	}
	if fieldErrors := services.ValidateProfileUpdate(user.Role, input); len(fieldErrors) > 0 {
		return validationFailed(c, fieldErrors)
	}

	updated, err := handler.profileService.UpdateProfile(user.ID, input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"user": userView(&updated)})
}
