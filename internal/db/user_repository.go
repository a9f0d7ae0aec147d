package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("id = ?", userID).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

// ListExceptAdmin returns every account except the reserved admin one,
// trimmed to the fields the user directory exposes.
func (repo *UserRepository) ListExceptAdmin() ([]models.UserSummary, error) {
	users := make([]models.UserSummary, 0)
	if err := repo.database.Model(&models.User{}).
		Select("id", "username").
		Where("username <> ?", models.AdminUsername).
		Order("created_at ASC").
		Scan(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
