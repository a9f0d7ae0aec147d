package db

import "gorm.io/gorm"

type Repositories struct {
	Users         *UserRepository
	Pregnancy     *PregnancyRepository
	DailyRecords  *DailyRecordRepository
	Health        *HealthRepository
	Photos        *PhotoRepository
	Checkups      *CheckupRepository
	Reminders     *ReminderRepository
	Relationships *RelationshipRepository
	Suggestions   *SuggestionRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(database),
		Pregnancy:     NewPregnancyRepository(database),
		DailyRecords:  NewDailyRecordRepository(database),
		Health:        NewHealthRepository(database),
		Photos:        NewPhotoRepository(database),
		Checkups:      NewCheckupRepository(database),
		Reminders:     NewReminderRepository(database),
		Relationships: NewRelationshipRepository(database),
		Suggestions:   NewSuggestionRepository(database),
	}
}
