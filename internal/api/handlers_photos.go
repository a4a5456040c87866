package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hanbit-dev/carebond/internal/services"
)

func (handler *Handler) ListPhotos(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	photos, loadErr := handler.photoService.ListForPatient(patientID)
	if loadErr != nil {
		return serviceError(c, loadErr)
	}

	views := make([]fiber.Map, 0, len(photos))
	for _, photo := range photos {
		views = append(views, photoView(photo))
	}
	return c.JSON(fiber.Map{"photos": views})
}

func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	var payload photoUploadPayload
	if parseErr := c.BodyParser(&payload); parseErr != nil {
		return apiError(c, fiber.StatusBadRequest, "error.bad_request")
	}

	photo, uploadErr := handler.photoService.Upload(patientID, user.ID, payload.Data, payload.ContentType, payload.Caption)
	if uploadErr != nil {
		return serviceError(c, uploadErr)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"photo": photoView(photo)})
}

// GetPhotoFile streams the stored image bytes with the uploaded content
// type.
func (handler *Handler) GetPhotoFile(c *fiber.Ctx) error {
	_, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	photo, loadErr := handler.photoService.Get(c.Params("id"))
	if loadErr != nil {
		return serviceError(c, loadErr)
	}
	if photo.PatientID != patientID {
		return serviceError(c, services.ErrPhotoNotFound)
	}

	c.Set(fiber.HeaderContentType, photo.ContentType)
	return c.Send(photo.Data)
}

func (handler *Handler) DeletePhoto(c *fiber.Ctx) error {
	user, patientID, err := handler.requirePatient(c)
	if err != nil {
		return serviceError(c, err)
	}

	photo, loadErr := handler.photoService.Get(c.Params("id"))
	if loadErr != nil {
		return serviceError(c, loadErr)
	}
	if photo.PatientID != patientID {
		return serviceError(c, services.ErrPhotoNotFound)
	}

	if deleteErr := handler.photoService.Delete(photo.ID, *user); deleteErr != nil {
		return serviceError(c, deleteErr)
	}
	return c.JSON(fiber.Map{"ok": true})
}
