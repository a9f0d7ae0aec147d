package models

import "time"

const (
	SuggestionTypeDaily     = "daily"
	SuggestionTypeHealth    = "health"
	SuggestionTypeNutrition = "nutrition"
	SuggestionTypeExercise  = "exercise"
	SuggestionTypeMental    = "mental"
)

// AiSuggestion stores a resolved advice string. ContextData is an opaque
// serialized blob, kept verbatim and never parsed back.
type AiSuggestion struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	UserID            string    `gorm:"not null;index" json:"user_id"`
	SuggestionType    string    `gorm:"not null" json:"suggestion_type"`
	SuggestionContent string    `gorm:"not null" json:"suggestion_content"`
	ContextData       string    `json:"context_data"`
	CreatedAt         time.Time `json:"created_at"`
	IsRead            bool      `gorm:"not null;default:false" json:"is_read"`
}

func (AiSuggestion) TableName() string { return "ai_suggestions" }
