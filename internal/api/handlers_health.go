package api

import (
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) SaveHealthRecord(c *fiber.Ctx) error {
	var input healthRecordInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgRecordRequired)
	}
	if input.UserID == "" || input.RecordDate == "" {
		return apiError(c, fiber.StatusBadRequest, msgRecordRequired)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	err := handler.records.SaveHealthRecord(input.UserID, input.RecordDate, services.HealthRecordInput{
		FetalMovement: input.FetalMovement,
		BloodPressure: input.BloodPressure,
		BloodSugar:    input.BloodSugar,
		Medication:    input.Medication,
	})
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("save health record failed")
		return apiError(c, fiber.StatusInternalServerError, msgSaveFailed)
	}
	return success(c)
}

func (handler *Handler) ListHealthRecords(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	records, err := handler.records.ListHealthRecords(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list health records failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(records)
}

func (handler *Handler) GetFetalMovement(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	points, err := handler.records.FetalMovementSeries(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load fetal movement series failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(points)
}
