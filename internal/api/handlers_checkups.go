package api

import (
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) AddCheckup(c *fiber.Ctx) error {
	var input checkupInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgCheckupRequired)
	}
	if input.UserID == "" || input.CheckupDate == "" {
		return apiError(c, fiber.StatusBadRequest, msgCheckupRequired)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	err := handler.checkups.Add(input.UserID, services.CheckupInput{
		CheckupDate: input.CheckupDate,
		Hospital:    input.Hospital,
		Doctor:      input.Doctor,
		CheckupType: input.CheckupType,
		Results:     input.Results,
		Notes:       input.Notes,
	})
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("add checkup failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}
	return success(c)
}

func (handler *Handler) ListCheckups(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	checkups, err := handler.checkups.List(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list checkups failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(checkups)
}
