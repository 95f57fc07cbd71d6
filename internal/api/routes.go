package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	registerAPIRoutes(app, handler)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Get("/config", handler.AuthConfig)
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/oidc/login", handler.OIDCLogin)
	auth.Get("/oidc/callback", handler.OIDCCallback)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/change-password", handler.AuthRequired, handler.ChangePassword)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
	profile.Delete("", handler.DeleteAccount)

	symptoms := api.Group("/symptoms", handler.AuthRequired)
	symptoms.Get("", handler.GetSymptoms)
	symptoms.Post("", handler.CreateSymptoms)
	symptoms.Get("/trends", handler.GetSymptomTrends)
	symptoms.Get("/common", handler.GetCommonSymptoms)
	symptoms.Delete("/:id", handler.DeleteSymptom)

	cycles := api.Group("/cycles", handler.AuthRequired)
	cycles.Get("", handler.GetCycles)
	cycles.Post("", handler.CreateCycle)
	cycles.Get("/stats", handler.GetCycleStats)
	cycles.Delete("/:id", handler.DeleteCycle)

	medications := api.Group("/medications", handler.AuthRequired)
	medications.Get("", handler.GetMedications)
	medications.Post("", handler.CreateMedication)
	medications.Get("/upcoming", handler.GetUpcomingDoses)
	medications.Get("/logs", handler.GetMedicationLogs)
	medications.Put("/:id", handler.UpdateMedication)
	medications.Delete("/:id", handler.DeleteMedication)
	medications.Post("/:id/toggle", handler.ToggleMedication)
	medications.Post("/:id/taken", handler.MarkMedicationTaken)

	professionals := api.Group("/professionals", handler.AuthRequired)
	professionals.Get("", handler.GetProfessionals)
	professionals.Get("/slots", handler.GetAppointmentSlots)
	professionals.Get("/:id", handler.GetProfessional)
	professionals.Post("/:id/favorite", handler.ToggleFavoriteProfessional)

	appointments := api.Group("/appointments", handler.AuthRequired)
	appointments.Get("", handler.GetAppointments)
	appointments.Post("", handler.BookAppointment)
	appointments.Put("/:id/reschedule", handler.RescheduleAppointment)
	appointments.Post("/:id/cancel", handler.CancelAppointment)
	appointments.Post("/:id/complete", handler.CompleteAppointment)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Get("", handler.GetNotifications)
	notifications.Post("/read-all", handler.MarkAllNotificationsRead)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)
	api.Get("/activity", handler.AuthRequired, handler.GetActivity)

	api.Get("/reports", handler.AuthRequired, handler.GetReport)
	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	articles := api.Group("/articles", handler.AuthRequired)
	articles.Get("", handler.GetArticles)
	articles.Get("/:slug", handler.GetArticle)
}
