package db

import (
	"errors"

	"cradle/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	database *gorm.DB
}

func NewPhotoRepository(database *gorm.DB) *PhotoRepository {
	return &PhotoRepository{database: database}
}

func (repo *PhotoRepository) Create(photo *models.Photo) error {
	return repo.database.Create(photo).Error
}

func (repo *PhotoRepository) ListByUser(userID string) ([]models.Photo, error) {
	photos := make([]models.Photo, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("photo_date DESC").
		Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) FindByID(photoID string) (models.Photo, bool, error) {
	var photo models.Photo
	err := repo.database.Where("id = ?", photoID).First(&photo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Photo{}, false, nil
	}
	if err != nil {
		return models.Photo{}, false, err
	}
	return photo, true, nil
}

func (repo *PhotoRepository) DeleteByID(photoID string) error {
	return repo.database.Where("id = ?", photoID).Delete(&models.Photo{}).Error
}
