package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
)

type RelationshipRepository struct {
	database *gorm.DB
}

func NewRelationshipRepository(database *gorm.DB) *RelationshipRepository {
	return &RelationshipRepository{database: database}
}

// Create inserts a new edge. Duplicate edges between the same pair are
// permitted; the caller decides whether that matters.
func (repo *RelationshipRepository) Create(relationship *models.UserRelationship) error {
	return repo.database.Create(relationship).Error
}

func (repo *RelationshipRepository) ListByPrimaryUser(userID string) ([]models.FamilyMember, error) {
	members := make([]models.FamilyMember, 0)
	if err := repo.database.Model(&models.UserRelationship{}).
		Select("user_relationships.*, users.username").
		Joins("JOIN users ON user_relationships.related_user_id = users.id").
		Where("user_relationships.primary_user_id = ?", userID).
		Scan(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// DeleteByID removes the edge if present; deleting a missing edge still
// reports success.
func (repo *RelationshipRepository) DeleteByID(relationshipID string) error {
	return repo.database.Where("id = ?", relationshipID).Delete(&models.UserRelationship{}).Error
}
