package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/anjiri1684/exam_portal/configs"
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// CheckAndGenerateCertificate issues a pass certificate for a finalized
// attempt whose score meets the exam's pass marks. Runs after submission in
// the background; a failure here never affects the recorded score.
func CheckAndGenerateCertificate(attempt models.Attempt, exam models.Exam, summary ScoreSummary) {
	if exam.PassMarks <= 0 || summary.Score < exam.PassMarks {
		return
	}

	var existing models.Certificate
	if err := database.DB.Where("attempt_id = ?", attempt.ID).First(&existing).Error; err == nil {
		return
	}

	var student models.User
	if err := database.DB.Where("id = ?", attempt.UserID).First(&student).Error; err != nil {
		log.Printf("🔥 Certificate skipped, student %d not found: %v", attempt.UserID, err)
		return
	}

	serial := uuid.New().String()

	htmlData, err := generateCertificateHTML(student.FullName, exam.Title, serial, summary)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate HTML: %v", err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate certificate PDF: %v", err)
		return
	}

	uploadURL, err := uploadCertificate(pdfBytes, attempt.UserID, serial)
	if err != nil {
		log.Printf("🔥 Failed to upload certificate: %v", err)
		return
	}

	certificate := models.Certificate{
		UserID:         attempt.UserID,
		AttemptID:      attempt.ID,
		ExamTitle:      exam.Title,
		SerialNumber:   serial,
		CertificateURL: uploadURL,
		IssuedAt:       time.Now(),
	}

	if err := database.DB.Create(&certificate).Error; err != nil {
		log.Printf("🔥 Failed to save certificate for attempt %d: %v", attempt.ID, err)
	} else {
		log.Printf("✅ Issued certificate %s for attempt %d (%s).", serial, attempt.ID, exam.Title)
	}
}

func generateCertificateHTML(studentName, examTitle, serial string, summary ScoreSummary) (string, error) {
	tmpl, err := template.ParseFiles("templates/certificate.html")
	if err != nil {
		return "", err
	}

	data := struct {
		StudentName  string
		ExamTitle    string
		SerialNumber string
		Score        int
		TotalMarks   int
		Percentage   float64
		IssuedDate   string
	}{
		StudentName:  studentName,
		ExamTitle:    examTitle,
		SerialNumber: serial,
		Score:        summary.Score,
		TotalMarks:   summary.TotalMarks,
		Percentage:   summary.Percentage,
		IssuedDate:   time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadCertificate(fileBytes []byte, studentID uint, serial string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("certificates/%d_%s", studentID, serial),
		Folder:       "exam_portal_certificates",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
