package api

import "encoding/json"

type credentialsInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type pregnancyInfoInput struct {
	UserID         string `json:"userId"`
	DueDate        string `json:"dueDate"`
	ConceptionDate string `json:"conceptionDate"`
}

type dailyRecordInput struct {
	UserID     string   `json:"userId"`
	RecordDate string   `json:"recordDate"`
	Symptoms   string   `json:"symptoms"`
	Mood       string   `json:"mood"`
	Weight     *float64 `json:"weight"`
	Diet       string   `json:"diet"`
	Notes      string   `json:"notes"`
}

type healthRecordInput struct {
	UserID        string `json:"userId"`
	RecordDate    string `json:"recordDate"`
	FetalMovement *int   `json:"fetalMovement"`
	BloodPressure string `json:"bloodPressure"`
	BloodSugar    string `json:"bloodSugar"`
	Medication    string `json:"medication"`
}

type checkupInput struct {
	UserID      string `json:"userId"`
	CheckupDate string `json:"checkupDate"`
	Hospital    string `json:"hospital"`
	Doctor      string `json:"doctor"`
	CheckupType string `json:"checkupType"`
	Results     string `json:"results"`
	Notes       string `json:"notes"`
}

type reminderInput struct {
	UserID       string `json:"userId"`
	ReminderType string `json:"reminderType"`
	ReminderDate string `json:"reminderDate"`
	Title        string `json:"title"`
	Description  string `json:"description"`
}

type familyMemberInput struct {
	PrimaryUserID    string `json:"primaryUserId"`
	RelatedUserID    string `json:"relatedUserId"`
	RelationshipType string `json:"relationshipType"`
	CanView          *bool  `json:"canView"`
	CanEdit          *bool  `json:"canEdit"`
}

type suggestionInput struct {
	UserID         string          `json:"userId"`
	SuggestionType string          `json:"suggestionType"`
	ContextData    json.RawMessage `json:"contextData"`
}
