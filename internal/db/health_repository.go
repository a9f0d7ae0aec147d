package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HealthRepository struct {
	database *gorm.DB
}

func NewHealthRepository(database *gorm.DB) *HealthRepository {
	return &HealthRepository{database: database}
}

func (repo *HealthRepository) Upsert(record *models.HealthMonitoring) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"fetal_movement", "blood_pressure", "blood_sugar", "medication"}),
	}).Create(record).Error
}

func (repo *HealthRepository) ListByUser(userID string) ([]models.HealthMonitoring, error) {
	records := make([]models.HealthMonitoring, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("record_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *HealthRepository) FetalMovementSeries(userID string) ([]models.FetalMovementPoint, error) {
	points := make([]models.FetalMovementPoint, 0)
	if err := repo.database.Model(&models.HealthMonitoring{}).
		Select("record_date", "fetal_movement").
		Where("user_id = ? AND fetal_movement IS NOT NULL", userID).
		Order("record_date ASC").
		Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (repo *HealthRepository) ListSharedWith(viewerID string) ([]models.SharedHealthRecord, error) {
	records := make([]models.SharedHealthRecord, 0)
	if err := repo.database.Model(&models.HealthMonitoring{}).
		Select("health_monitoring.*, users.username AS shared_by").
		Joins("JOIN user_relationships ON health_monitoring.user_id = user_relationships.related_user_id").
		Joins("JOIN users ON health_monitoring.user_id = users.id").
		Where("user_relationships.primary_user_id = ? AND user_relationships.can_view = ?", viewerID, true).
		Order("health_monitoring.record_date DESC").
		Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
