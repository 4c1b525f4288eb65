package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/anjiri1684/exam_portal/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin", middleware.Protected(), middleware.StaffRequired())
	admin.Get("/dashboard", handlers.AdminDashboard)
	admin.Get("/students", handlers.ListStudents)
	admin.Get("/results", handlers.AdminListResults)
	admin.Get("/results/export", handlers.ExportResultsCSV)
	admin.Get("/certificates", handlers.AdminListCertificates)
}
