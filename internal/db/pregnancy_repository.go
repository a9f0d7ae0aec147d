package db

import (
	"errors"

	"cradle/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PregnancyRepository struct {
	database *gorm.DB
}

func NewPregnancyRepository(database *gorm.DB) *PregnancyRepository {
	return &PregnancyRepository{database: database}
}

// Upsert keeps one pregnancy_info row per user: the unique index on user_id
// turns a second insert into an in-place update of the two dates.
func (repo *PregnancyRepository) Upsert(info *models.PregnancyInfo) error {
	return repo.database.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"due_date", "conception_date", "updated_at"}),
	}).Create(info).Error
}

func (repo *PregnancyRepository) FindByUser(userID string) (models.PregnancyInfo, bool, error) {
	var info models.PregnancyInfo
	err := repo.database.Where("user_id = ?", userID).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.PregnancyInfo{}, false, nil
	}
	if err != nil {
		return models.PregnancyInfo{}, false, err
	}
	return info, true, nil
}
