package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.LanguageMiddleware)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	onboarding := api.Group("/onboarding", handler.AuthRequired)
	onboarding.Get("/status", handler.OnboardingStatus)
	onboarding.Get("/options", handler.OnboardingOptions)
	onboarding.Post("/validate-field", handler.ValidateOnboardingField)
	onboarding.Post("/guardian", handler.OnboardGuardian)
	onboarding.Post("/caregiver", handler.OnboardCaregiver)
	onboarding.Post("/acquaintance", handler.OnboardAcquaintance)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)

	patient := api.Group("/patient", handler.AuthRequired)
	patient.Get("", handler.GetPatient)
	patient.Get("/care-team", handler.GetCareTeam)
	patient.Post("/medications", handler.GuardianOnly, handler.AddMedication)
	patient.Delete("/medications/:name", handler.GuardianOnly, handler.RemoveMedication)
	patient.Get("/requests", handler.ListGuardianRequests)
	patient.Post("/requests", handler.GuardianOnly, handler.CreateGuardianRequest)
	patient.Delete("/requests/:id", handler.GuardianOnly, handler.DeleteGuardianRequest)

	reports := api.Group("/reports", handler.AuthRequired)
	reports.Get("", handler.ListReports)
	reports.Get("/template", handler.CaregiverOnly, handler.GetReportTemplate)
	reports.Get("/:id", handler.GetReport)
	reports.Post("", handler.CaregiverOnly, handler.CreateReport)
	reports.Put("/:id", handler.CaregiverOnly, handler.ReplaceReport)
	reports.Delete("/:id", handler.CaregiverOnly, handler.DeleteReport)
	reports.Post("/:id/entries", handler.CaregiverOnly, handler.AddReportEntry)
	reports.Post("/:id/toggle-activity", handler.CaregiverOnly, handler.ToggleReportActivity)
	reports.Post("/:id/toggle-medication", handler.CaregiverOnly, handler.ToggleReportMedication)
	reports.Post("/:id/note", handler.CaregiverOnly, handler.SetReportNote)
	reports.Post("/:id/acknowledge", handler.CaregiverOnly, handler.AcknowledgeReportRequest)

	messages := api.Group("/messages", handler.AuthRequired)
	messages.Get("", handler.ListMessages)
	messages.Post("", handler.SendMessage)
	messages.Delete("/:id", handler.DeleteMessage)

	photos := api.Group("/photos", handler.AuthRequired)
	photos.Get("", handler.ListPhotos)
	photos.Post("", handler.UploadPhoto)
	photos.Get("/:id/file", handler.GetPhotoFile)
	photos.Delete("/:id", handler.DeletePhoto)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/json", handler.ExportJSON)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/xlsx", handler.ExportXLSX)
}
