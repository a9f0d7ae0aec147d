package services

import (
	"time"

	"cradle/internal/models"
	"github.com/google/uuid"
)

type PregnancyRepository interface {
	Upsert(info *models.PregnancyInfo) error
	FindByUser(userID string) (models.PregnancyInfo, bool, error)
}

type PregnancyService struct {
	pregnancies PregnancyRepository
}

func NewPregnancyService(pregnancies PregnancyRepository) *PregnancyService {
	return &PregnancyService{pregnancies: pregnancies}
}

// SetInfo upserts the single pregnancy row for the user: the first call
// inserts, later calls replace the two dates in place.
func (service *PregnancyService) SetInfo(userID string, dueDate string, conceptionDate string) error {
	now := time.Now().UTC()
	return service.pregnancies.Upsert(&models.PregnancyInfo{
		ID:             uuid.NewString(),
		UserID:         userID,
		DueDate:        dueDate,
		ConceptionDate: conceptionDate,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
}

func (service *PregnancyService) Info(userID string) (models.PregnancyInfo, bool, error) {
	return service.pregnancies.FindByUser(userID)
}

// Progress computes the week/day report for the user's stored due date.
// Returns ErrNoDueDate when nothing usable is stored.
func (service *PregnancyService) Progress(userID string, now time.Time) (ProgressReport, error) {
	info, found, err := service.pregnancies.FindByUser(userID)
	if err != nil {
		return ProgressReport{}, err
	}
	if !found {
		return ProgressReport{}, ErrNoDueDate
	}
	return CalcProgress(info.DueDate, info.ConceptionDate, now)
}
