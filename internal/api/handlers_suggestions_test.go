package api

import (
	"testing"

	"cradle/internal/models"
	"cradle/internal/services"
	"github.com/gofiber/fiber/v2"
)

func TestGenerateSuggestionPicksFromFixedTable(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	response := performJSON(t, app, fiber.MethodPost, "/api/ai-suggestions/generate", fiber.Map{
		"userId":         userID,
		"suggestionType": models.SuggestionTypeNutrition,
		"contextData":    fiber.Map{"week": 20},
	})
	wantStatus(t, response, fiber.StatusOK)

	var body struct {
		Success    bool `json:"success"`
		Suggestion struct {
			ID                string `json:"id"`
			SuggestionType    string `json:"suggestion_type"`
			SuggestionContent string `json:"suggestion_content"`
		} `json:"suggestion"`
	}
	decodeBody(t, response, &body)
	if !body.Success || body.Suggestion.ID == "" {
		t.Fatalf("generate returned %+v", body)
	}
	if body.Suggestion.SuggestionType != models.SuggestionTypeNutrition {
		t.Fatalf("expected nutrition suggestion, got %+v", body.Suggestion)
	}

	options, known := services.AdviceOptions(models.SuggestionTypeNutrition)
	if !known {
		t.Fatal("nutrition must be a known advice type")
	}
	inCatalog := false
	for _, option := range options {
		if option == body.Suggestion.SuggestionContent {
			inCatalog = true
			break
		}
	}
	if !inCatalog {
		t.Fatalf("content %q not in the nutrition table", body.Suggestion.SuggestionContent)
	}
}

func TestSuggestionsPersistAndMarkRead(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	response := performJSON(t, app, fiber.MethodPost, "/api/ai-suggestions/generate", fiber.Map{
		"userId":         userID,
		"suggestionType": models.SuggestionTypeDaily,
		"contextData":    fiber.Map{"week": 12},
	})
	wantStatus(t, response, fiber.StatusOK)

	var listed []struct {
		ID                string `json:"id"`
		SuggestionType    string `json:"suggestion_type"`
		SuggestionContent string `json:"suggestion_content"`
		ContextData       string `json:"context_data"`
		IsRead            bool   `json:"is_read"`
	}
	response = performJSON(t, app, fiber.MethodGet, "/api/ai-suggestions/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)
	decodeBody(t, response, &listed)

	if len(listed) != 1 {
		t.Fatalf("expected 1 stored suggestion, got %d", len(listed))
	}
	if listed[0].IsRead {
		t.Fatal("new suggestion must start unread")
	}
	if listed[0].ContextData != `{"week":12}` {
		t.Fatalf("expected context blob stored verbatim, got %q", listed[0].ContextData)
	}

	response = performJSON(t, app, fiber.MethodPut, "/api/ai-suggestions/"+listed[0].ID+"/read", nil)
	wantStatus(t, response, fiber.StatusOK)

	response = performJSON(t, app, fiber.MethodGet, "/api/ai-suggestions/"+userID, nil)
	decodeBody(t, response, &listed)
	if len(listed) != 1 || !listed[0].IsRead {
		t.Fatalf("expected suggestion marked read, got %+v", listed)
	}
}

func TestGenerateSuggestionUnknownTypeStillSucceeds(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	response := performJSON(t, app, fiber.MethodPost, "/api/ai-suggestions/generate", fiber.Map{
		"userId":         userID,
		"suggestionType": "sleep",
	})
	wantStatus(t, response, fiber.StatusOK)

	var body struct {
		Success    bool `json:"success"`
		Suggestion struct {
			SuggestionContent string `json:"suggestion_content"`
		} `json:"suggestion"`
	}
	decodeBody(t, response, &body)
	if !body.Success || body.Suggestion.SuggestionContent == "" {
		t.Fatalf("expected a fallback suggestion, got %+v", body)
	}
}

func TestGenerateSuggestionRequiresTypeAndUser(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/ai-suggestions/generate", fiber.Map{
		"suggestionType": models.SuggestionTypeDaily,
	})
	wantStatus(t, response, fiber.StatusBadRequest)
	wantErrorMessage(t, response, msgParamsIncomplete)
}
