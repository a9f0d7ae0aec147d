package db

import (
	"errors"

	"cradle/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyRecordRepository struct {
	database *gorm.DB
}

func NewDailyRecordRepository(database *gorm.DB) *DailyRecordRepository {
	return &DailyRecordRepository{database: database}
}

// Upsert writes the day atomically: on a (user_id, record_date) collision the
// new field values win and updated_at is bumped, created_at is kept.
func (repo *DailyRecordRepository) Upsert(record *models.DailyRecord) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "record_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"symptoms", "mood", "weight", "diet", "notes", "updated_at"}),
	}).Create(record).Error
}

func (repo *DailyRecordRepository) ListByUser(userID string) ([]models.DailyRecord, error) {
	records := make([]models.DailyRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("record_date DESC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *DailyRecordRepository) FindByUserAndDate(userID string, recordDate string) (models.DailyRecord, bool, error) {
	var record models.DailyRecord
	err := repo.database.Where("user_id = ? AND record_date = ?", userID, recordDate).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DailyRecord{}, false, nil
	}
	if err != nil {
		return models.DailyRecord{}, false, err
	}
	return record, true, nil
}

func (repo *DailyRecordRepository) WeightHistory(userID string) ([]models.WeightPoint, error) {
	points := make([]models.WeightPoint, 0)
	if err := repo.database.Model(&models.DailyRecord{}).
		Select("record_date", "weight").
		Where("user_id = ? AND weight IS NOT NULL", userID).
		Order("record_date ASC").
		Scan(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// ListSharedWith returns daily records of every user the viewer has a
// can_view relationship to, annotated with the owner's username.
func (repo *DailyRecordRepository) ListSharedWith(viewerID string) ([]models.SharedDailyRecord, error) {
	records := make([]models.SharedDailyRecord, 0)
	if err := repo.database.Model(&models.DailyRecord{}).
		Select("daily_records.*, users.username AS shared_by").
		Joins("JOIN user_relationships ON daily_records.user_id = user_relationships.related_user_id").
		Joins("JOIN users ON daily_records.user_id = users.id").
		Where("user_relationships.primary_user_id = ? AND user_relationships.can_view = ?", viewerID, true).
		Order("daily_records.record_date DESC").
		Scan(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
