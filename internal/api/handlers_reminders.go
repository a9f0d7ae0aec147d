package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) AddReminder(c *fiber.Ctx) error {
	var input reminderInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgFieldsRequired)
	}
	if input.UserID == "" || input.ReminderType == "" || input.ReminderDate == "" || input.Title == "" {
		return apiError(c, fiber.StatusBadRequest, msgFieldsRequired)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	if err := handler.reminders.Add(input.UserID, input.ReminderType, input.ReminderDate, input.Title, input.Description); err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("add reminder failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}
	return success(c)
}

func (handler *Handler) ListReminders(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	reminders, err := handler.reminders.ListPending(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list reminders failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(reminders)
}

func (handler *Handler) CompleteReminder(c *fiber.Ctx) error {
	reminderID := c.Params("reminderId")

	if err := handler.reminders.Complete(reminderID); err != nil {
		handler.logger.Error().Err(err).Str("reminder_id", reminderID).Msg("complete reminder failed")
		return apiError(c, fiber.StatusInternalServerError, msgActionFailed)
	}
	return success(c)
}
