package models

import "time"

// FullTermDays is the length of a full pregnancy counted from conception.
const FullTermDays = 280

type PregnancyInfo struct {
	ID             string    `gorm:"primaryKey" json:"id"`
	UserID         string    `gorm:"uniqueIndex;not null" json:"user_id"`
	DueDate        string    `gorm:"type:date;not null" json:"due_date"`
	ConceptionDate string    `gorm:"type:date" json:"conception_date"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (PregnancyInfo) TableName() string { return "pregnancy_info" }
