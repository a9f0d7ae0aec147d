package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type ReminderRepository interface {
	Create(reminder *models.Reminder) error
	ListPending(userID string) ([]models.Reminder, error)
	MarkCompleted(reminderID string) error
}

type ReminderService struct {
	reminders ReminderRepository
}

func NewReminderService(reminders ReminderRepository) *ReminderService {
	return &ReminderService{reminders: reminders}
}

func (service *ReminderService) Add(userID string, reminderType string, reminderDate string, title string, description string) error {
	return service.reminders.Create(&models.Reminder{
		ID:           uuid.NewString(),
		UserID:       userID,
		ReminderType: reminderType,
		ReminderDate: reminderDate,
		Title:        title,
		Description:  description,
		CreatedAt:    time.Now().UTC(),
	})
}

// ListPending hides completed reminders; there is no way to reopen one.
func (service *ReminderService) ListPending(userID string) ([]models.Reminder, error) {
	return service.reminders.ListPending(userID)
}

func (service *ReminderService) Complete(reminderID string) error {
	return service.reminders.MarkCompleted(reminderID)
}
