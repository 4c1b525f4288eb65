package handlers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/gofiber/fiber/v2"
)

func AdminDashboard(c *fiber.Ctx) error {
	var totalExams, totalStudents, totalAttempts, totalQuestions int64
	database.DB.Model(&models.Exam{}).Count(&totalExams)
	database.DB.Model(&models.User{}).Where("role = ?", "student").Count(&totalStudents)
	database.DB.Model(&models.Attempt{}).Count(&totalAttempts)
	database.DB.Model(&models.Question{}).Count(&totalQuestions)

	var recentAttempts []models.Attempt
	database.DB.Preload("User").Preload("Exam").
		Where("is_submitted = ?", true).
		Order("completed_at desc").
		Limit(5).
		Find(&recentAttempts)

	return c.JSON(fiber.Map{
		"total_exams":     totalExams,
		"total_students":  totalStudents,
		"total_attempts":  totalAttempts,
		"total_questions": totalQuestions,
		"recent_attempts": recentAttempts,
	})
}

func ListStudents(c *fiber.Ctx) error {
	type StudentRow struct {
		ID           uint     `json:"id"`
		FullName     string   `json:"full_name"`
		Email        string   `json:"email"`
		AttemptCount int64    `json:"attempt_count"`
		AvgScore     *float64 `json:"avg_score"`
	}

	var rows []StudentRow
	err := database.DB.Model(&models.User{}).
		Select("users.id, users.full_name, users.email, COUNT(attempts.id) AS attempt_count, AVG(attempts.score) AS avg_score").
		Joins("LEFT JOIN attempts ON attempts.user_id = users.id").
		Where("users.role = ?", "student").
		Group("users.id").
		Order("users.full_name").
		Scan(&rows).Error
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(rows)
}

func AdminListResults(c *fiber.Ctx) error {
	var attempts []models.Attempt
	query := database.DB.Preload("User").Preload("Exam").
		Where("is_submitted = ?", true).
		Order("completed_at desc")

	if examID := c.Query("exam_id"); examID != "" {
		query = query.Where("exam_id = ?", examID)
	}

	if err := query.Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	type ResultRow struct {
		AttemptID   uint       `json:"attempt_id"`
		StudentName string     `json:"student_name"`
		ExamTitle   string     `json:"exam_title"`
		Score       int        `json:"score"`
		PassMarks   int        `json:"pass_marks"`
		StartedAt   time.Time  `json:"started_at"`
		CompletedAt *time.Time `json:"completed_at"`
	}

	rows := make([]ResultRow, len(attempts))
	for i, a := range attempts {
		rows[i] = ResultRow{
			AttemptID:   a.ID,
			StudentName: a.User.FullName,
			ExamTitle:   a.Exam.Title,
			Score:       a.Score,
			PassMarks:   a.Exam.PassMarks,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
		}
	}
	return c.JSON(rows)
}

func ExportResultsCSV(c *fiber.Ctx) error {
	var attempts []models.Attempt
	query := database.DB.Preload("User").Preload("Exam").
		Where("is_submitted = ?", true).
		Order("completed_at desc")

	if examID := c.Query("exam_id"); examID != "" {
		query = query.Where("exam_id = ?", examID)
	}
	if err := query.Find(&attempts).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}

	b := new(bytes.Buffer)
	w := csv.NewWriter(b)

	headers := []string{"Attempt ID", "Student Name", "Student Email", "Exam", "Score", "Pass Marks", "Started At", "Completed At"}
	if err := w.Write(headers); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV header"})
	}

	for _, a := range attempts {
		completedAt := ""
		if a.CompletedAt != nil {
			completedAt = a.CompletedAt.Format("2006-01-02 15:04")
		}
		row := []string{
			strconv.FormatUint(uint64(a.ID), 10),
			a.User.FullName,
			a.User.Email,
			a.Exam.Title,
			strconv.Itoa(a.Score),
			strconv.Itoa(a.Exam.PassMarks),
			a.StartedAt.Format("2006-01-02 15:04"),
			completedAt,
		}
		if err := w.Write(row); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to write CSV row"})
		}
	}
	w.Flush()

	c.Set("Content-Type", "text/csv")
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"results_%s.csv\"", time.Now().Format("2006-01-02")))

	return c.Send(b.Bytes())
}

func AdminListCertificates(c *fiber.Ctx) error {
	var certificates []models.Certificate
	if err := database.DB.Preload("User").Order("issued_at desc").Find(&certificates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Database error"})
	}
	return c.JSON(certificates)
}
