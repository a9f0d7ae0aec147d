package api

import (
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestCheckupAddAndList(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	userID := registerTestUser(t, app, "mei")

	checkups := []fiber.Map{
		{
			"userId":      userID,
			"checkupDate": "2026-05-10",
			"hospital":    "First People's Hospital",
			"doctor":      "Dr. Zhou",
			"checkupType": "ultrasound",
			"results":     "normal",
		},
		{
			"userId":      userID,
			"checkupDate": "2026-06-12",
			"hospital":    "First People's Hospital",
			"checkupType": "glucose",
		},
	}
	for _, checkup := range checkups {
		response := performJSON(t, app, fiber.MethodPost, "/api/medical-checkups", checkup)
		wantStatus(t, response, fiber.StatusOK)
	}

	var listed []struct {
		CheckupDate string `json:"checkup_date"`
		Hospital    string `json:"hospital"`
		Doctor      string `json:"doctor"`
		CheckupType string `json:"checkup_type"`
		Results     string `json:"results"`
	}
	response := performJSON(t, app, fiber.MethodGet, "/api/medical-checkups/"+userID, nil)
	wantStatus(t, response, fiber.StatusOK)
	decodeBody(t, response, &listed)

	if len(listed) != 2 {
		t.Fatalf("expected 2 checkups, got %d", len(listed))
	}
	if listed[0].CheckupDate != "2026-06-12" {
		t.Fatalf("expected newest checkup first, got %+v", listed[0])
	}
	if listed[1].Doctor != "Dr. Zhou" || listed[1].Results != "normal" {
		t.Fatalf("stored checkup mismatch: %+v", listed[1])
	}
}

func TestCheckupRequiresUserAndDate(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)

	response := performJSON(t, app, fiber.MethodPost, "/api/medical-checkups", fiber.Map{
		"hospital": "First People's Hospital",
	})
	wantStatus(t, response, fiber.StatusBadRequest)
	wantErrorMessage(t, response, msgCheckupRequired)
}
