package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
)

type SuggestionRepository struct {
	database *gorm.DB
}

func NewSuggestionRepository(database *gorm.DB) *SuggestionRepository {
	return &SuggestionRepository{database: database}
}

func (repo *SuggestionRepository) Create(suggestion *models.AiSuggestion) error {
	return repo.database.Create(suggestion).Error
}

func (repo *SuggestionRepository) ListByUser(userID string) ([]models.AiSuggestion, error) {
	suggestions := make([]models.AiSuggestion, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (repo *SuggestionRepository) MarkRead(suggestionID string) error {
	return repo.database.Model(&models.AiSuggestion{}).
		Where("id = ?", suggestionID).
		Update("is_read", true).Error
}
