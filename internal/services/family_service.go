package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type RelationshipRepository interface {
	Create(relationship *models.UserRelationship) error
	ListByPrimaryUser(userID string) ([]models.FamilyMember, error)
	DeleteByID(relationshipID string) error
}

type SharedDailyRepository interface {
	ListSharedWith(viewerID string) ([]models.SharedDailyRecord, error)
}

type SharedHealthRepository interface {
	ListSharedWith(viewerID string) ([]models.SharedHealthRecord, error)
}

// FamilyService manages the directed follow edges and the record views they
// unlock. Visibility is can_view only; can_edit is carried but inert.
type FamilyService struct {
	relationships RelationshipRepository
	sharedDaily   SharedDailyRepository
	sharedHealth  SharedHealthRepository
}

func NewFamilyService(relationships RelationshipRepository, sharedDaily SharedDailyRepository, sharedHealth SharedHealthRepository) *FamilyService {
	return &FamilyService{
		relationships: relationships,
		sharedDaily:   sharedDaily,
		sharedHealth:  sharedHealth,
	}
}

func (service *FamilyService) AddMember(primaryUserID string, relatedUserID string, relationshipType string, canView bool, canEdit bool) (models.UserRelationship, error) {
	relationship := models.UserRelationship{
		ID:               uuid.NewString(),
		PrimaryUserID:    primaryUserID,
		RelatedUserID:    relatedUserID,
		RelationshipType: relationshipType,
		CanView:          canView,
		CanEdit:          canEdit,
		CreatedAt:        time.Now().UTC(),
	}
	if err := service.relationships.Create(&relationship); err != nil {
		return models.UserRelationship{}, err
	}
	return relationship, nil
}

func (service *FamilyService) ListMembers(userID string) ([]models.FamilyMember, error) {
	return service.relationships.ListByPrimaryUser(userID)
}

func (service *FamilyService) RemoveMember(relationshipID string) error {
	return service.relationships.DeleteByID(relationshipID)
}

func (service *FamilyService) SharedDailyRecords(viewerID string) ([]models.SharedDailyRecord, error) {
	return service.sharedDaily.ListSharedWith(viewerID)
}

func (service *FamilyService) SharedHealthRecords(viewerID string) ([]models.SharedHealthRecord, error) {
	return service.sharedHealth.ListSharedWith(viewerID)
}
