package handlers

import (
	"encoding/csv"
	"net/url"
	"strconv"
	"time"

	config "github.com/anjiri1684/exam_portal/configs"
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/services"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GenerateUploadSignature creates a secure signature for a frontend
// profile-picture upload.
func GenerateUploadSignature(c *fiber.Ctx) error {
	cloudinaryURL := config.Config("CLOUDINARY_URL")
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to initialize Cloudinary"})
	}

	parsedURL, err := url.Parse(cloudinaryURL)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to parse Cloudinary URL"})
	}
	secret, _ := parsedURL.User.Password()

	paramsToSign, err := api.StructToParams(uploader.UploadParams{
		Folder: "exam_portal_profiles",
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare signature params"})
	}

	timestamp := time.Now().Unix()
	paramsToSign.Set("timestamp", strconv.FormatInt(timestamp, 10))

	signature, err := api.SignParameters(paramsToSign, secret)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to sign upload params"})
	}

	apiKey := cld.Config.Cloud.APIKey

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"api_key":   apiKey,
		"folder":    "exam_portal_profiles",
	})
}

// UploadQuestions bulk-imports questions into an exam from an uploaded CSV
// file with columns text,option1..option4,correct_answer and optional marks.
// The whole batch runs in one transaction: if any row is invalid, nothing is
// committed and every bad row is reported back.
func UploadQuestions(c *fiber.Ctx) error {
	examID := c.Params("examId")
	var exam models.Exam
	if err := database.DB.First(&exam, "id = ?", examID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Exam not found"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "A CSV file is required under the 'file' field"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to open uploaded file"})
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Failed to parse CSV file: " + err.Error()})
	}

	rows, rowErrors := services.ParseQuestionRecords(records)
	if len(rowErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":      "File contains invalid rows; nothing was imported",
			"row_errors": rowErrors,
		})
	}
	if len(rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "File contains no question rows"})
	}

	questions := make([]models.Question, len(rows))
	for i, row := range rows {
		questions[i] = models.Question{
			ExamID:        exam.ID,
			Text:          row.Text,
			Option1:       row.Option1,
			Option2:       row.Option2,
			Option3:       row.Option3,
			Option4:       row.Option4,
			CorrectAnswer: row.CorrectAnswer,
			Marks:         row.Marks,
		}
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&questions).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to import questions"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":        "Questions imported successfully",
		"imported_count": len(questions),
	})
}
