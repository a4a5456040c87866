package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetPatient(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	patient, loadErr := handler.repositories.Patients.FindByID(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}
	return c.JSON(fiber.Map{"patient": patientView(patient, user)})
}

// GetCareTeam lists everyone joined to the patient through the matching
// code, the guardian included.
func (handler *Handler) GetCareTeam(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	members, loadErr := handler.repositories.Users.ListByPatient(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}

	views := make([]fiber.Map, 0, len(members))
	for index := range members {
		member := members[index]
		views = append(views, fiber.Map{
			"id":           member.ID,
			"role":         member.Role,
			"name":         member.Name,
			"phone":        member.Phone,
			"relationship": member.Relationship,
		})
	}
	return c.JSON(fiber.Map{"members": views})
}

func (handler *Handler) AddMedication(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	var payload medicationPayload
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	patient, opErr := handler.profileService.AddMedication(patientID, payload.Name)
	if opErr != nil {
		return serviceError(c, opErr)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"patient": patientView(patient, user)})
}

func (handler *Handler) RemoveMedication(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	patient, opErr := handler.profileService.RemoveMedication(patientID, c.Params("name"))
	if opErr != nil {
		return serviceError(c, opErr)
	}
	return c.JSON(fiber.Map{"patient": patientView(patient, user)})
}

func (handler *Handler) ListGuardianRequests(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	records, loadErr := handler.profileService.ListGuardianRequests(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}

	views := make([]fiber.Map, 0, len(records))
	for _, record := range records {
		views = append(views, requestRecordView(record))
	}
	return c.JSON(fiber.Map{"requests": views})
}

func (handler *Handler) CreateGuardianRequest(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	var payload guardianRequestPayload
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	record, opErr := handler.profileService.CreateGuardianRequest(patientID, payload.Request)
	if opErr != nil {
		return serviceError(c, opErr)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"request": requestRecordView(record)})
}

func (handler *Handler) DeleteGuardianRequest(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	requestID := c.Params("id")
	records, loadErr := handler.profileService.ListGuardianRequests(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}
	owned := false
	for _, record := range records {
		if record.ID == requestID {
			owned = true
			break
		}
	}
	if !owned {
		return apiError(c, fiber.StatusNotFound, "error.guardian_request_not_found")
	}

	if opErr := handler.profileService.DeleteGuardianRequest(requestID); opErr != nil {
		return serviceError(c, opErr)
	}
	return c.JSON(fiber.Map{"ok": true})
}
