package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) ListSuggestions(c *fiber.Ctx) error {
	userID := c.Params("userId")
	if err := handler.requireIdentity(c, userID); err != nil {
		return err
	}

	suggestions, err := handler.suggestions.List(userID)
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", userID).Msg("list suggestions failed")
		return apiError(c, fiber.StatusInternalServerError, msgQueryFailed)
	}
	return c.JSON(suggestions)
}

func (handler *Handler) GenerateSuggestion(c *fiber.Ctx) error {
	var input suggestionInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, msgParamsIncomplete)
	}
	if input.UserID == "" || input.SuggestionType == "" {
		return apiError(c, fiber.StatusBadRequest, msgParamsIncomplete)
	}
	if err := handler.requireIdentity(c, input.UserID); err != nil {
		return err
	}

	suggestion, err := handler.suggestions.Generate(input.UserID, input.SuggestionType, string(input.ContextData))
	if err != nil {
		handler.logger.Error().Err(err).Str("user_id", input.UserID).Msg("generate suggestion failed")
		return apiError(c, fiber.StatusInternalServerError, msgSuggestionFailed)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"suggestion": fiber.Map{
			"id":                 suggestion.ID,
			"suggestion_type":    suggestion.SuggestionType,
			"suggestion_content": suggestion.SuggestionContent,
		},
	})
}

func (handler *Handler) MarkSuggestionRead(c *fiber.Ctx) error {
	suggestionID := c.Params("suggestionId")

	if err := handler.suggestions.MarkRead(suggestionID); err != nil {
		handler.logger.Error().Err(err).Str("suggestion_id", suggestionID).Msg("mark suggestion read failed")
		return apiError(c, fiber.StatusInternalServerError, msgActionFailed)
	}
	return success(c)
}
