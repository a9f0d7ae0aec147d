package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type CheckupInput struct {
	CheckupDate string
	Hospital    string
	Doctor      string
	CheckupType string
	Results     string
	Notes       string
}

type CheckupRepository interface {
	Create(checkup *models.MedicalCheckup) error
	ListByUser(userID string) ([]models.MedicalCheckup, error)
}

// CheckupService is append-only: checkup history is never edited.
type CheckupService struct {
	checkups CheckupRepository
}

func NewCheckupService(checkups CheckupRepository) *CheckupService {
	return &CheckupService{checkups: checkups}
}

func (service *CheckupService) Add(userID string, input CheckupInput) error {
	return service.checkups.Create(&models.MedicalCheckup{
		ID:          uuid.NewString(),
		UserID:      userID,
		CheckupDate: input.CheckupDate,
		Hospital:    input.Hospital,
		Doctor:      input.Doctor,
		CheckupType: input.CheckupType,
		Results:     input.Results,
		Notes:       input.Notes,
		CreatedAt:   time.Now().UTC(),
	})
}

func (service *CheckupService) List(userID string) ([]models.MedicalCheckup, error) {
	return service.checkups.ListByUser(userID)
}
