package api

import (
	"errors"

	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	userID := c.FormValue("userId")
	photoDate := c.FormValue("photoDate")
	file, fileErr := c.FormFile("photo")
	if userID == "" || photoDate == "" || fileErr != nil {
		return apiError(c, fiber.StatusBadRequest, msgPhotoRequired)
	}
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	photo, err := handler.photos.Upload(userID, photoDate, c.FormValue("photoType"), c.FormValue("description"), file)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("upload photo failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"photoPath": photo.PhotoPath,
	})
}

func (handler *Handler) ListPhotos(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	photos, err := handler.photos.List(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list photos failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(photos)
}

func (handler *Handler) DeletePhoto(c *fiber.Ctx) error {
	photoID := c.Params("photoId")

	err := handler.photos.Delete(photoID)
	if errors.Is(err, services.ErrPhotoNotFound) {
		return apiError(c, fiber.StatusNotFound, msgPhotoNotFound)
	}
	if err != nil {
		handler.logger.Error().Err(err).Str("photo_id", photoID).Msg("delete photo failed")
		return apiError(c, fiber.StatusInternalServerError, msgDeleteFailed)
	}
	return success(c)
}
