package services

import (
	"testing"

	"cradle/internal/models"
)

func TestAdviceFor_KnownTypesStayInCatalog(t *testing.T) {
	t.Parallel()

	types := []string{
		models.SuggestionTypeDaily,
		models.SuggestionTypeHealth,
		models.SuggestionTypeNutrition,
		models.SuggestionTypeExercise,
		models.SuggestionTypeMental,
	}

	for _, suggestionType := range types {
		suggestionType := suggestionType
		t.Run(suggestionType, func(t *testing.T) {
			t.Parallel()

			options, known := AdviceOptions(suggestionType)
			if !known {
				t.Fatalf("expected %s to be a known type", suggestionType)
			}
			if len(options) != 5 {
				t.Fatalf("expected 5 fixed options for %s, got %d", suggestionType, len(options))
			}

			// Selection is random, so assert membership rather than a value.
			for attempt := 0; attempt < 20; attempt++ {
				advice := AdviceFor(suggestionType)
				if !containsString(options, advice) {
					t.Fatalf("advice %q not in the fixed table for %s", advice, suggestionType)
				}
			}
		})
	}
}

func TestAdviceFor_UnknownTypeFallsBack(t *testing.T) {
	t.Parallel()

	if got := AdviceFor("sleep"); got != genericAdvice {
		t.Fatalf("expected generic fallback for unknown type, got %q", got)
	}
	if _, known := AdviceOptions("sleep"); known {
		t.Fatal("expected unknown type to report known=false")
	}
}

func TestAdviceOptions_ReturnsCopy(t *testing.T) {
	t.Parallel()

	options, _ := AdviceOptions(models.SuggestionTypeDaily)
	options[0] = "mutated"

	fresh, _ := AdviceOptions(models.SuggestionTypeDaily)
	if fresh[0] == "mutated" {
		t.Fatal("mutating the returned slice must not change the catalog")
	}
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
