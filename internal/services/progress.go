package services

import (
	"errors"
	"time"

	"cradle/internal/models"
)

const dayLayout = "2006-01-02"

// ErrNoDueDate marks a progress request for a user without a usable due date.
// Handlers turn it into the soft error payload, not an HTTP failure.
var ErrNoDueDate = errors.New("due date not set")

// ProgressReport mirrors the shape the dashboard renders directly, so the
// progress value stays unclamped: negative before conception, above 100
// past the due date.
type ProgressReport struct {
	Weeks          int     `json:"weeks"`
	Days           int     `json:"days"`
	TotalWeeks     int     `json:"totalWeeks"`
	DaysRemaining  int     `json:"daysRemaining"`
	Progress       float64 `json:"progress"`
	ConceptionDate string  `json:"conceptionDate"`
	DueDate        string  `json:"dueDate"`
	Today          string  `json:"today"`
}

// CalcProgress turns a due date and optional conception date into week/day
// figures for the given instant. Both dates are anchored to UTC midnight so
// local clock skew cannot shift the day count.
func CalcProgress(dueDate string, conceptionDate string, now time.Time) (ProgressReport, error) {
	if dueDate == "" {
		return ProgressReport{}, ErrNoDueDate
	}
	due, err := time.ParseInLocation(dayLayout, dueDate, time.UTC)
	if err != nil {
		return ProgressReport{}, ErrNoDueDate
	}

	conception := due.AddDate(0, 0, -models.FullTermDays)
	if conceptionDate != "" {
		parsed, err := time.ParseInLocation(dayLayout, conceptionDate, time.UTC)
		if err != nil {
			return ProgressReport{}, ErrNoDueDate
		}
		conception = parsed
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	daysPassed := int(today.Sub(conception).Hours() / 24)

	return ProgressReport{
		Weeks:          floorDiv(daysPassed, 7),
		Days:           daysPassed % 7,
		TotalWeeks:     40,
		DaysRemaining:  models.FullTermDays - daysPassed,
		Progress:       float64(daysPassed) / models.FullTermDays * 100,
		ConceptionDate: conception.Format(dayLayout),
		DueDate:        dueDate,
		Today:          today.Format(dayLayout),
	}, nil
}

// floorDiv rounds toward negative infinity, so week numbers keep flooring
// before conception while the day remainder stays truncated.
func floorDiv(value int, divisor int) int {
	quotient := value / divisor
	if value%divisor != 0 && (value < 0) != (divisor < 0) {
		quotient--
	}
	return quotient
}
