package jobs

import (
	"fmt"
	"log"
	"time"

	config "github.com/anjiri1684/exam_portal/configs"
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/notifications"
)

// SendDailyResultsDigest emails staff a summary of the submissions recorded
// over the last day.
func SendDailyResultsDigest() {
	log.Println("Running job: SendDailyResultsDigest...")

	adminEmail := config.Config("ADMIN_EMAIL")
	if adminEmail == "" {
		return
	}

	since := time.Now().AddDate(0, 0, -1)

	var submitted int64
	database.DB.Model(&models.Attempt{}).
		Where("is_submitted = ? AND completed_at >= ?", true, since).
		Count(&submitted)

	if submitted == 0 {
		return
	}

	var avgScore float64
	database.DB.Model(&models.Attempt{}).
		Where("is_submitted = ? AND completed_at >= ?", true, since).
		Select("COALESCE(AVG(score), 0)").
		Row().Scan(&avgScore)

	body := fmt.Sprintf(
		"<h1>Daily Exam Digest</h1><p>%d attempts were submitted in the last 24 hours with an average score of %.1f.</p>",
		submitted, avgScore,
	)

	go notifications.SendEmail(config.Config("ADMIN_FULL_NAME"), adminEmail, "Daily Exam Results Digest", body)
}
