package models

import "time"

// UserRelationship is a directed edge: the primary user follows the related
// user's records subject to the two flags. CanEdit is stored and returned but
// no write path consults it.
type UserRelationship struct {
	ID               string    `gorm:"primaryKey" json:"id"`
	PrimaryUserID    string    `gorm:"not null;index" json:"primary_user_id"`
	RelatedUserID    string    `gorm:"not null" json:"related_user_id"`
	RelationshipType string    `gorm:"not null" json:"relationship_type"`
	CanView          bool      `gorm:"not null;default:true" json:"can_view"`
	CanEdit          bool      `gorm:"not null;default:false" json:"can_edit"`
	CreatedAt        time.Time `json:"created_at"`
}

func (UserRelationship) TableName() string { return "user_relationships" }

// FamilyMember is a relationship row annotated with the related user's name.
type FamilyMember struct {
	UserRelationship
	Username string `json:"username"`
}

// SharedDailyRecord is a daily record annotated with its owner's username.
type SharedDailyRecord struct {
	DailyRecord
	SharedBy string `json:"shared_by"`
}

// SharedHealthRecord is a health monitoring row annotated with its owner's username.
type SharedHealthRecord struct {
	HealthMonitoring
	SharedBy string `json:"shared_by"`
}
