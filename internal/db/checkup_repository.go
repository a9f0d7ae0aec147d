package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
)

type CheckupRepository struct {
	database *gorm.DB
}

func NewCheckupRepository(database *gorm.DB) *CheckupRepository {
	return &CheckupRepository{database: database}
}

func (repo *CheckupRepository) Create(checkup *models.MedicalCheckup) error {
	return repo.database.Create(checkup).Error
}

func (repo *CheckupRepository) ListByUser(userID string) ([]models.MedicalCheckup, error) {
	checkups := make([]models.MedicalCheckup, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("checkup_date DESC").
		Find(&checkups).Error; err != nil {
		return nil, err
	}
	return checkups, nil
}
