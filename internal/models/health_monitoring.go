package models

import "time"

type HealthMonitoring struct {
	ID            string    `gorm:"primaryKey" json:"id"`
	UserID        string    `gorm:"not null;uniqueIndex:uidx_health_user_date" json:"user_id"`
	RecordDate    string    `gorm:"type:date;not null;uniqueIndex:uidx_health_user_date" json:"record_date"`
	FetalMovement *int      `json:"fetal_movement"`
	BloodPressure string    `json:"blood_pressure"`
	BloodSugar    string    `json:"blood_sugar"`
	Medication    string    `json:"medication"`
	CreatedAt     time.Time `json:"created_at"`
}

func (HealthMonitoring) TableName() string { return "health_monitoring" }

// FetalMovementPoint is the thin projection served by the fetal movement endpoint.
type FetalMovementPoint struct {
	RecordDate    string `json:"record_date"`
	FetalMovement *int   `json:"fetal_movement"`
}
