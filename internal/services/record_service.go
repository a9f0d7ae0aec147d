package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type DailyRecordInput struct {
	Symptoms string
	Mood     string
	Weight   *float64
	Diet     string
	Notes    string
}

type HealthRecordInput struct {
	FetalMovement *int
	BloodPressure string
	BloodSugar    string
	Medication    string
}

type DailyRecordRepository interface {
	Upsert(record *models.DailyRecord) error
	ListByUser(userID string) ([]models.DailyRecord, error)
	FindByUserAndDate(userID string, recordDate string) (models.DailyRecord, bool, error)
	WeightHistory(userID string) ([]models.WeightPoint, error)
}

type HealthRecordRepository interface {
	Upsert(record *models.HealthMonitoring) error
	ListByUser(userID string) ([]models.HealthMonitoring, error)
	FetalMovementSeries(userID string) ([]models.FetalMovementPoint, error)
}

// RecordService owns the two per-date record kinds. Both share the same
// discipline: at most one row per (user, date), last write wins.
type RecordService struct {
	dailyRecords  DailyRecordRepository
	healthRecords HealthRecordRepository
}

func NewRecordService(dailyRecords DailyRecordRepository, healthRecords HealthRecordRepository) *RecordService {
	return &RecordService{
		dailyRecords:  dailyRecords,
		healthRecords: healthRecords,
	}
}

func (service *RecordService) SaveDailyRecord(userID string, recordDate string, input DailyRecordInput) error {
	now := time.Now().UTC()
	return service.dailyRecords.Upsert(&models.DailyRecord{
		ID:         uuid.NewString(),
		UserID:     userID,
		RecordDate: recordDate,
		Symptoms:   input.Symptoms,
		Mood:       input.Mood,
		Weight:     input.Weight,
		Diet:       input.Diet,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	})
}

func (service *RecordService) ListDailyRecords(userID string) ([]models.DailyRecord, error) {
	return service.dailyRecords.ListByUser(userID)
}

func (service *RecordService) DailyRecordByDate(userID string, recordDate string) (models.DailyRecord, bool, error) {
	return service.dailyRecords.FindByUserAndDate(userID, recordDate)
}

func (service *RecordService) WeightHistory(userID string) ([]models.WeightPoint, error) {
	return service.dailyRecords.WeightHistory(userID)
}

func (service *RecordService) SaveHealthRecord(userID string, recordDate string, input HealthRecordInput) error {
	return service.healthRecords.Upsert(&models.HealthMonitoring{
		ID:            uuid.NewString(),
		UserID:        userID,
		RecordDate:    recordDate,
		FetalMovement: input.FetalMovement,
		BloodPressure: input.BloodPressure,
		BloodSugar:    input.BloodSugar,
		Medication:    input.Medication,
		CreatedAt:     time.Now().UTC(),
	})
}

func (service *RecordService) ListHealthRecords(userID string) ([]models.HealthMonitoring, error) {
	return service.healthRecords.ListByUser(userID)
}

func (service *RecordService) FetalMovementSeries(userID string) ([]models.FetalMovementPoint, error) {
	return service.healthRecords.FetalMovementSeries(userID)
}
