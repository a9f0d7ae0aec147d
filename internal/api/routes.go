package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.TokenIdentity)

	api.Post("/register", handler.Register)
	api.Post("/login", handler.Login)
	api.Get("/users", handler.ListUsers)

	api.Post("/pregnancy-info", handler.SetPregnancyInfo)
	api.Get("/pregnancy-info/:userId", handler.GetPregnancyInfo)
	api.Get("/pregnancy-weeks/:userId", handler.GetPregnancyWeeks)

	api.Post("/daily-record", handler.SaveDailyRecord)
	api.Get("/daily-records/:userId", handler.ListDailyRecords)
	api.Get("/daily-record/:userId/:date", handler.GetDailyRecord)
	api.Get("/weight-history/:userId", handler.GetWeightHistory)

	api.Post("/health-monitoring", handler.SaveHealthRecord)
	api.Get("/health-monitoring/:userId", handler.ListHealthRecords)
	api.Get("/fetal-movement/:userId", handler.GetFetalMovement)

	api.Post("/photos", handler.UploadPhoto)
	api.Get("/photos/:userId", handler.ListPhotos)
	api.Delete("/photos/:photoId", handler.DeletePhoto)

	api.Post("/medical-checkups", handler.AddCheckup)
	api.Get("/medical-checkups/:userId", handler.ListCheckups)

	api.Post("/reminders", handler.AddReminder)
	api.Get("/reminders/:userId", handler.ListReminders)
	api.Put("/reminders/:reminderId/complete", handler.CompleteReminder)

	api.Get("/ai-suggestions/:userId", handler.ListSuggestions)
	api.Post("/ai-suggestions/generate", handler.GenerateSuggestion)
	api.Put("/ai-suggestions/:suggestionId/read", handler.MarkSuggestionRead)

	api.Get("/family-members/:userId", handler.ListFamilyMembers)
	api.Post("/family-members", handler.AddFamilyMember)
	api.Delete("/family-members/:relationshipId", handler.RemoveFamilyMember)
	api.Get("/shared-data/:userId", handler.GetSharedData)
	api.Get("/shared-health/:userId", handler.GetSharedHealth)
}
