package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type SuggestionRepository interface {
	Create(suggestion *models.AiSuggestion) error
	ListByUser(userID string) ([]models.AiSuggestion, error)
	MarkRead(suggestionID string) error
}

type SuggestionService struct {
	suggestions SuggestionRepository
}

func NewSuggestionService(suggestions SuggestionRepository) *SuggestionService {
	return &SuggestionService{suggestions: suggestions}
}

// Generate resolves an advice string for the type and persists it together
// with the caller's context blob, which is stored verbatim and never read
// back structurally.
func (service *SuggestionService) Generate(userID string, suggestionType string, contextData string) (models.AiSuggestion, error) {
	suggestion := models.AiSuggestion{
		ID:                uuid.NewString(),
		UserID:            userID,
		SuggestionType:    suggestionType,
		SuggestionContent: AdviceFor(suggestionType),
		ContextData:       contextData,
		CreatedAt:         time.Now().UTC(),
	}
	if err := service.suggestions.Create(&suggestion); err != nil {
		return models.AiSuggestion{}, err
	}
	return suggestion, nil
}

func (service *SuggestionService) List(userID string) ([]models.AiSuggestion, error) {
	return service.suggestions.ListByUser(userID)
}

func (service *SuggestionService) MarkRead(suggestionID string) error {
	return service.suggestions.MarkRead(suggestionID)
}
