package api

import (
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestPregnancyWeeksWithoutDueDate(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	// Soft error: the client renders this inline, so the status stays 200.
	response := performJSON(t, app, fiber.MethodGet, "/api/pregnancy-weeks/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)
	wantErrorMessage(t, response, msgNoDueDate)
}

func TestPregnancyInfoRoundTrip(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	today := time.Now().UTC()
	dueDate := today.AddDate(0, 0, 70).Format("2006-01-02")

	response := performJSON(t, app, fiber.MethodPost, "/api/pregnancy-info", fiber.Map{
		"userId":  userID,
		"dueDate": dueDate,
	})
	wantStatus(t, response, fiber.StatusOK)

	var info struct {
		UserID  string `json:"user_id"`
		DueDate string `json:"due_date"`
	}
	response = performJSON(t, app, fiber.MethodGet, "/api/pregnancy-info/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)
	decodeBody(t, response, &info)
	if info.UserID != userID || info.DueDate != dueDate {
		t.Fatalf("stored info mismatch: %+v", info)
	}

	// A second write for the same user replaces the first row.
	laterDueDate := today.AddDate(0, 0, 77).Format("2006-01-02")
	response = performJSON(t, app, fiber.MethodPost, "/api/pregnancy-info", fiber.Map{
		"userId":  userID,
		"dueDate": laterDueDate,
	})
	wantStatus(t, response, fiber.StatusOK)

	response = performJSON(t, app, fiber.MethodGet, "/api/pregnancy-info/"+userID, nil)
	decodeBody(t, response, &info)
	if info.DueDate != laterDueDate {
		t.Fatalf("expected due date replaced with %s, got %s", laterDueDate, info.DueDate)
	}
}

func TestPregnancyWeeksComputesProgress(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	// 70 days to go puts the pregnancy at exactly week 30.
	dueDate := time.Now().UTC().AddDate(0, 0, 70).Format("2006-01-02")
	response := performJSON(t, app, fiber.MethodPost, "/api/pregnancy-info", fiber.Map{
		"userId":  userID,
		"dueDate": dueDate,
	})
	wantStatus(t, response, fiber.StatusOK)

	var report struct {
		Weeks         int     `json:"weeks"`
		Days          int     `json:"days"`
		TotalWeeks    int     `json:"totalWeeks"`
		DaysRemaining int     `json:"daysRemaining"`
		Progress      float64 `json:"progress"`
		DueDate       string  `json:"dueDate"`
	}
	response = performJSON(t, app, fiber.MethodGet, "/api/pregnancy-weeks/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)
	decodeBody(t, response, &report)

	if report.Weeks != 30 || report.Days != 0 {
		t.Fatalf("expected 30 weeks 0 days, got %d weeks %d days", report.Weeks, report.Days)
	}
	if report.DaysRemaining != 70 {
		t.Fatalf("expected 70 days remaining, got %d", report.DaysRemaining)
	}
	if report.TotalWeeks != 40 {
		t.Fatalf("expected totalWeeks 40, got %d", report.TotalWeeks)
	}
	if report.Progress <= 0 || report.Progress > 100 {
		t.Fatalf("expected progress within (0,100], got %f", report.Progress)
	}
	if report.DueDate != dueDate {
		t.Fatalf("expected due date %s echoed, got %s", dueDate, report.DueDate)
	}
}

func TestPregnancyInfoRequiresDueDate(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	response := performJSON(t, app, fiber.MethodPost, "/api/pregnancy-info", fiber.Map{
		"userId": userID,
	})
	wantStatus(t, response, fiber.StatusBadRequest)
	wantErrorMessage(t, response, msgDueDateRequired)
}

func TestPregnancyInfoMissingReturnsNull(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	response := performJSON(t, app, fiber.MethodGet, "/api/pregnancy-info/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)

	var body interface{}
	decodeBody(t, response, &body)
	if body != nil {
		t.Fatalf("expected null body for missing info, got %v", body)
	}
}
