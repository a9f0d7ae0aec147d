package api

import (
	"errors"
	"time"

	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SetPregnancyInfo(c *fiber.Ctx) error {
	var input pregnancyInfoInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgDueDateRequired)
	}
	if input.UserID == "" || input.DueDate == "" {
		return apiError(c, fiber.StatusBadRequest, msgDueDateRequired)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	if err := handler.pregnancy.SetInfo(input.UserID, input.DueDate, input.ConceptionDate); err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("save pregnancy info failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}
	return success(c)
}

func (handler *Handler) GetPregnancyInfo(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	info, found, err := handler.pregnancy.Info(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load pregnancy info failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(info)
}

// GetPregnancyWeeks reports progress; a missing due date is a soft error in
// the body, not an HTTP failure, because the client renders it inline.
func (handler *Handler) GetPregnancyWeeks(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	report, err := handler.pregnancy.Progress(userID, time.Now())
	if errors.Is(err, services.ErrNoDueDate) {
		return c.JSON(fiber.Map{"error": msgNoDueDate})
	}
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("compute pregnancy progress failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(report)
}
