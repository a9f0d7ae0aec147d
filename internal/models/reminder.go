package models

import "time"

const (
	ReminderTypeCheckup    = "checkup"
	ReminderTypeMedication = "medication"
	ReminderTypeSupplement = "supplement"
	ReminderTypeOther      = "other"
)

// Reminder moves one way: pending -> completed, never back.
type Reminder struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	ReminderType string    `gorm:"not null" json:"reminder_type"`
	ReminderDate string    `gorm:"not null" json:"reminder_date"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	IsCompleted  bool      `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}

func (Reminder) TableName() string { return "reminders" }
