package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListFamilyMembers(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	members, err := handler.family.ListMembers(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list family members failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(members)
}

func (handler *Handler) AddFamilyMember(c *fiber.Ctx) error {
	var input familyMemberInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgParamsIncomplete)
	}
	if input.PrimaryUserID == "" || input.RelatedUserID == "" || input.RelationshipType == "" {
		return apiError(c, fiber.StatusBadRequest, msgParamsIncomplete)
	}
	if err := handler.requireIdentity(c, input.PrimaryUserID); err != nil {
		return err
	}

	// Flags default like the schema: viewable, not editable.
	canView := input.CanView == nil || *input.CanView
	canEdit := input.CanEdit != nil && *input.CanEdit

	relationship, err := handler.family.AddMember(input.PrimaryUserID, input.RelatedUserID, input.RelationshipType, canView, canEdit)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.PrimaryUserID).Msg("add family member failed")
		return apiError(c, fiber.StatusInternalServerError, msgAddFamilyFailed)
	}

	return c.JSON(fiber.Map{
		"success":        true,
		"relationshipId": relationship.ID,
	})
}

func (handler *Handler) RemoveFamilyMember(c *fiber.Ctx) error {
	relationshipID := c.Params("relationshipId")

	if err := handler.family.RemoveMember(relationshipID); err != nil {
		handler.logger.Error().Err(err).Str("relationship_id", relationshipID).Msg("remove family member failed")
		return apiError(c, fiber.StatusInternalServerError, msgDeleteFailed)
	}
	return success(c)
}

func (handler *Handler) GetSharedData(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	records, err := handler.family.SharedDailyRecords(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load shared daily records failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(records)
}

func (handler *Handler) GetSharedHealth(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	records, err := handler.family.SharedHealthRecords(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("load shared health records failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(records)
}
