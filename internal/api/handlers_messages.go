package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListMessages(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	messages, loadErr := handler.messageService.Thread(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}

	views := make([]fiber.Map, 0, len(messages))
	for _, message := range messages {
		views = append(views, messageView(message))
	}
	return c.JSON(fiber.Map{"messages": views})
}

func (handler *Handler) SendMessage(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	var payload messagePayload
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	message, sendErr := handler.messageService.Send(patientID, *user, payload.Text)
	if sendErr != nil {
		return serviceError(c, sendErr)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": messageView(message)})
}

func (handler *Handler) DeleteMessage(c *fiber.Ctx) error {
	user, _, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	if deleteErr := handler.messageService.Delete(c.Params("id"), user.ID); deleteErr != nil {
		return serviceError(c, deleteErr)
	}
	return c.JSON(fiber.Map{"ok": true})
}
