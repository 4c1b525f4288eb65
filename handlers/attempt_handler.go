package handlers

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/notifications"
	"github.com/anjiri1684/exam_portal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func StudentListExams(c *fiber.Ctx) error {
	var exams []models.Exam
	database.DB.Order("created_at desc").Find(&exams)
	return c.JSON(exams)
}

func GetExamInstructions(c *fiber.Ctx) error {
	examID := c.Params("examId")
	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	var questionCount int64
	database.DB.Model(&models.Question{}).Where("exam_id = ?", exam.ID).Count(&questionCount)

	return c.JSON(fiber.Map{
		"exam":             exam,
		"question_count":   questionCount,
		"duration_seconds": exam.DurationMinutes * 60,
	})
}

type QuestionForStudent struct {
	ID      uint   `json:"id"`
	Text    string `json:"text"`
	Option1 string `json:"option1"`
	Option2 string `json:"option2"`
	Option3 string `json:"option3"`
	Option4 string `json:"option4"`
}

// StartAttempt opens a new attempt on an exam. The question order is drawn
// fresh for every attempt, and the set being graded is snapshotted in the
// same transaction so later edits to the exam cannot change this attempt's
// grading. Nothing stops a student from holding several attempts open at
// once; each one is independent.
func StartAttempt(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	examID := c.Params("examId")

	var exam models.Exam
	if err := database.DB.Preload("Questions").First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	shuffled := services.ShuffleQuestions(exam.Questions, rng)

	attempt := models.Attempt{
		UserID:    studentID,
		ExamID:    exam.ID,
		StartedAt: time.Now(),
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}
		snapshot := services.SnapshotQuestions(attempt.ID, shuffled)
		if len(snapshot) == 0 {
			return nil
		}
		return tx.Create(&snapshot).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to start attempt"})
	}

	questionsForStudent := make([]QuestionForStudent, len(shuffled))
	for i, q := range shuffled {
		questionsForStudent[i] = QuestionForStudent{
			ID:      q.ID,
			Text:    q.Text,
			Option1: q.Option1,
			Option2: q.Option2,
			Option3: q.Option3,
			Option4: q.Option4,
		}
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt_id":       attempt.ID,
		"exam_title":       exam.Title,
		"duration_minutes": exam.DurationMinutes,
		"time_remaining":   exam.DurationMinutes * 60,
		"questions":        questionsForStudent,
	})
}

func GetRemainingTime(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	attemptID := c.Params("attemptId")

	var attempt models.Attempt
	if err := database.DB.Preload("Exam").First(&attempt, "id = ? AND user_id = ?", attemptID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}

	remaining := services.RemainingSeconds(attempt.StartedAt, attempt.Exam.DurationMinutes, attempt.IsSubmitted, time.Now())
	return c.JSON(fiber.Map{"remaining_seconds": remaining})
}

type SubmitAttemptRequest struct {
	// Answers maps "question_<id>" to the chosen option number in string
	// form. Missing keys are unanswered questions.
	Answers map[string]string `json:"answers"`
}

// SubmitAttempt finalizes an attempt. A submission past the duration plus
// grace window is flagged late but still graded in full. Finalization is a
// conditional update gated on is_submitted=false, so a duplicate submit —
// concurrent or not — loses the race and is turned away toward the existing
// result.
func SubmitAttempt(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	attemptID := c.Params("attemptId")

	var req SubmitAttemptRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	var attempt models.Attempt
	if err := database.DB.Preload("Exam").First(&attempt, "id = ? AND user_id = ?", attemptID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}

	if attempt.IsSubmitted {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":      "This attempt has already been submitted",
			"attempt_id": attempt.ID,
		})
	}

	now := time.Now()
	late := services.IsLate(attempt.StartedAt, attempt.Exam.DurationMinutes, now)

	var snapshot []models.AttemptQuestion
	database.DB.Where("attempt_id = ?", attempt.ID).Order("position").Find(&snapshot)

	summary := services.ScoreAttempt(snapshot, req.Answers)

	result := database.DB.Model(&models.Attempt{}).
		Where("id = ? AND is_submitted = ?", attempt.ID, false).
		Updates(map[string]interface{}{
			"score":        summary.Score,
			"completed_at": now,
			"is_submitted": true,
		})
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save results"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":      "This attempt has already been submitted",
			"attempt_id": attempt.ID,
		})
	}

	attempt.Score = summary.Score
	attempt.CompletedAt = &now
	attempt.IsSubmitted = true

	go services.CheckAndGenerateCertificate(attempt, attempt.Exam, summary)
	go sendResultEmail(studentID, attempt.Exam.Title, summary)

	response := fiber.Map{
		"attempt_id":      attempt.ID,
		"score":           summary.Score,
		"total_marks":     summary.TotalMarks,
		"correct_count":   summary.CorrectCount,
		"total_questions": summary.TotalQuestions,
		"percentage":      summary.Percentage,
		"submitted_at":    now,
		"late":            late,
	}
	if late {
		response["warning"] = "Time limit exceeded. Submission late."
	}
	return c.JSON(response)
}

func sendResultEmail(studentID uint, examTitle string, summary services.ScoreSummary) {
	var student models.User
	if err := database.DB.First(&student, "id = ?", studentID).Error; err != nil {
		return
	}
	notifications.SendEmail(
		student.FullName,
		student.Email,
		fmt.Sprintf("Your result for %s", examTitle),
		fmt.Sprintf("<h1>Exam Result</h1><p>You scored %d out of %d (%.1f%%) on <b>%s</b>.</p>",
			summary.Score, summary.TotalMarks, summary.Percentage, examTitle),
	)
}

func ListMyResults(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var attempts []models.Attempt
	database.DB.Preload("Exam").
		Where("user_id = ? AND is_submitted = ?", studentID, true).
		Order("completed_at desc").
		Find(&attempts)

	type ResultRow struct {
		AttemptID   uint       `json:"attempt_id"`
		ExamTitle   string     `json:"exam_title"`
		Score       int        `json:"score"`
		PassMarks   int        `json:"pass_marks"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	rows := make([]ResultRow, len(attempts))
	for i, a := range attempts {
		rows[i] = ResultRow{
			AttemptID:   a.ID,
			ExamTitle:   a.Exam.Title,
			Score:       a.Score,
			PassMarks:   a.Exam.PassMarks,
			CompletedAt: a.CompletedAt,
		}
	}
	return c.JSON(rows)
}

func GetAttemptResult(c *fiber.Ctx) error {
	studentID := currentUserID(c)
	attemptID := c.Params("attemptId")

	var attempt models.Attempt
	if err := database.DB.Preload("Exam").First(&attempt, "id = ? AND user_id = ?", attemptID, studentID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attempt not found"})
	}
	if !attempt.IsSubmitted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Result not found"})
	}

	var snapshot []models.AttemptQuestion
	database.DB.Where("attempt_id = ?", attempt.ID).Find(&snapshot)

	totalMarks := 0
	for _, q := range snapshot {
		totalMarks += q.Marks
	}
	percentage := 0.0
	if totalMarks > 0 {
		percentage = float64(attempt.Score) / float64(totalMarks) * 100
	}

	return c.JSON(fiber.Map{
		"attempt_id":      attempt.ID,
		"exam_title":      attempt.Exam.Title,
		"score":           attempt.Score,
		"total_marks":     totalMarks,
		"total_questions": len(snapshot),
		"percentage":      percentage,
		"pass_marks":      attempt.Exam.PassMarks,
		"started_at":      attempt.StartedAt,
		"completed_at":    attempt.CompletedAt,
	})
}

func ListMyCertificates(c *fiber.Ctx) error {
	studentID := currentUserID(c)

	var certificates []models.Certificate
	database.DB.Where("user_id = ?", studentID).Order("issued_at desc").Find(&certificates)
	return c.JSON(certificates)
}
