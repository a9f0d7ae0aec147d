package models

import "time"

// MedicalCheckup is append-only: no update or delete paths exist.
type MedicalCheckup struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	CheckupDate string    `gorm:"type:date;not null" json:"checkup_date"`
	Hospital    string    `json:"hospital"`
	Doctor      string    `json:"doctor"`
	CheckupType string    `json:"checkup_type"`
	Results     string    `json:"results"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
}

func (MedicalCheckup) TableName() string { return "medical_checkups" }
