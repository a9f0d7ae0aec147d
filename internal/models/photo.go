package models

import "time"

const (
	PhotoTypeBelly      = "belly"
	PhotoTypeUltrasound = "ultrasound"
	PhotoTypeOther      = "other"
)

type Photo struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"not null;index" json:"user_id"`
	PhotoDate   string    `gorm:"type:date;not null" json:"photo_date"`
	PhotoType   string    `gorm:"not null" json:"photo_type"`
	PhotoPath   string    `gorm:"not null" json:"photo_path"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Photo) TableName() string { return "photos" }
