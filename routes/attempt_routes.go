package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/anjiri1684/exam_portal/middleware"
	ws "github.com/anjiri1684/exam_portal/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func AttemptRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exams := api.Group("/exams", middleware.Protected())
	exams.Get("", handlers.StudentListExams)
	exams.Get("/:examId/instructions", handlers.GetExamInstructions)
	exams.Post("/:examId/start", handlers.StartAttempt)

	attempts := api.Group("/attempts", middleware.Protected())
	attempts.Get("/results", handlers.ListMyResults)
	attempts.Get("/:attemptId/time", handlers.GetRemainingTime)
	attempts.Post("/:attemptId/submit", handlers.SubmitAttempt)
	attempts.Get("/:attemptId/result", handlers.GetAttemptResult)

	api.Get("/certificates", middleware.Protected(), handlers.ListMyCertificates)

	app.Use("/ws/attempts/:attemptId/timer", func(c *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(c) {
			return fiber.ErrUpgradeRequired
		}
		return c.Next()
	})
	app.Get("/ws/attempts/:attemptId/timer", websocket.New(ws.ServeAttemptTimer))
}
