package api

import (
	"cradle/internal/db"
	"cradle/internal/services"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Handler struct {
	logger      zerolog.Logger
	secretKey   []byte
	auth        *services.AuthService
	pregnancy   *services.PregnancyService
	records     *services.RecordService
	photos      *services.PhotoService
	checkups    *services.CheckupService
	reminders   *services.ReminderService
	family      *services.FamilyService
	suggestions *services.SuggestionService
}

func NewHandler(database *gorm.DB, uploadsDir string, secretKey string, logger zerolog.Logger) (*Handler, error) {
	repositories := db.NewRepositories(database)

	uploads, err := services.NewUploadStore(uploadsDir)
	if err != nil {
		return nil, err
	}

	return &Handler{
		logger:      logger,
		secretKey:   []byte(secretKey),
		auth:        services.NewAuthService(repositories.Users),
		pregnancy:   services.NewPregnancyService(repositories.Pregnancy),
		records:     services.NewRecordService(repositories.DailyRecords, repositories.Health),
		photos:      services.NewPhotoService(repositories.Photos, uploads),
		checkups:    services.NewCheckupService(repositories.Checkups),
		reminders:   services.NewReminderService(repositories.Reminders),
		family:      services.NewFamilyService(repositories.Relationships, repositories.DailyRecords, repositories.Health),
		suggestions: services.NewSuggestionService(repositories.Suggestions),
	}, nil
}
