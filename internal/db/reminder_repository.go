package db

import (
	"cradle/internal/models"
	"gorm.io/gorm"
)

type ReminderRepository struct {
	database *gorm.DB
}

func NewReminderRepository(database *gorm.DB) *ReminderRepository {
	return &ReminderRepository{database: database}
}

func (repo *ReminderRepository) Create(reminder *models.Reminder) error {
	return repo.database.Create(reminder).Error
}

// ListPending returns only reminders not yet completed, soonest first.
func (repo *ReminderRepository) ListPending(userID string) ([]models.Reminder, error) {
	reminders := make([]models.Reminder, 0)
	if err := repo.database.
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("reminder_date ASC").
		Find(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

// MarkCompleted flips is_completed unconditionally; completing an already
// completed reminder is a no-op, not an error.
func (repo *ReminderRepository) MarkCompleted(reminderID string) error {
	return repo.database.Model(&models.Reminder{}).
		Where("id = ?", reminderID).
		Update("is_completed", true).Error
}
