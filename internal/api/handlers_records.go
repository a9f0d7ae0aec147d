package api

import (
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SaveDailyRecord(c *fiber.Ctx) error {
	var input dailyRecordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgRecordRequired)
	}
	if input.UserID == "" || input.RecordDate == "" {
		return apiError(c, fiber.StatusBadRequest, msgRecordRequired)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	err := handler.records.SaveDailyRecord(input.UserID, input.RecordDate, services.DailyRecordInput{
		Symptoms: input.Symptoms,
		Mood:     input.Mood,
		Weight:   input.Weight,
		Diet:     input.Diet,
		Notes:    input.Notes,
	})
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("save daily record failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}
	return success(c)
}

func (handler *Handler) ListDailyRecords(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	records, err := handler.records.ListDailyRecords(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list daily records failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(records)
}

func (handler *Handler) GetDailyRecord(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	record, found, err := handler.records.DailyRecordByDate(userID, c.Params("date"))
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load daily record failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	if !found {
		return c.JSON(nil)
	}
	return c.JSON(record)
}

func (handler *Handler) GetWeightHistory(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	points, err := handler.records.WeightHistory(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load weight history failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(points)
}
