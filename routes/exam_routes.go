package routes

import (
	"github.com/anjiri1684/exam_portal/handlers"
	"github.com/anjiri1684/exam_portal/middleware"
	"github.com/gofiber/fiber/v2"
)

func ExamRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	exams := api.Group("/admin/exams", middleware.Protected(), middleware.StaffRequired())
	exams.Post("", handlers.CreateExam)
	exams.Get("", handlers.ListExams)
	exams.Get("/:examId", handlers.GetExam)
	exams.Put("/:examId", handlers.UpdateExam)
	exams.Delete("/:examId", handlers.DeleteExam)

	exams.Post("/:examId/questions", handlers.CreateQuestion)
	exams.Get("/:examId/questions", handlers.ListExamQuestions)
	exams.Post("/:examId/questions/upload", handlers.UploadQuestions)

	questions := api.Group("/admin/questions", middleware.Protected(), middleware.StaffRequired())
	questions.Put("/:questionId", handlers.UpdateQuestion)
	questions.Delete("/:questionId", handlers.DeleteQuestion)
}
