package models

import "time"

const (
	MoodHappy     = "happy"
	MoodCalm      = "calm"
	MoodTired     = "tired"
	MoodAnxious   = "anxious"
	MoodIrritable = "irritable"
)

// DailyRecord holds one day of self-reported pregnancy notes. Dates are plain
// YYYY-MM-DD strings; one row per (user_id, record_date).
type DailyRecord struct {
	ID         string    `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"not null;uniqueIndex:uidx_daily_user_date" json:"user_id"`
	RecordDate string    `gorm:"type:date;not null;uniqueIndex:uidx_daily_user_date" json:"record_date"`
	Symptoms   string    `json:"symptoms"`
	Mood       string    `json:"mood"`
	Weight     *float64  `json:"weight"`
	Diet       string    `json:"diet"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (DailyRecord) TableName() string { return "daily_records" }

// WeightPoint is the thin projection served by the weight history endpoint.
type WeightPoint struct {
	RecordDate string   `json:"record_date"`
	Weight     *float64 `json:"weight"`
}
