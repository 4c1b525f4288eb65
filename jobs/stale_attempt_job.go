package jobs

import (
	"log"
	"time"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/services"
)

// ReportStaleAttempts logs how many in-progress attempts have outlived their
// exam's duration plus the grace period. Reporting only: abandoned attempts
// are never auto-submitted or cleaned up, they simply stay in progress.
func ReportStaleAttempts() {
	log.Println("Running job: ReportStaleAttempts...")

	var attempts []models.Attempt
	err := database.DB.Preload("Exam").
		Where("is_submitted = ?", false).
		Find(&attempts).Error
	if err != nil {
		log.Printf("Error checking for stale attempts: %v", err)
		return
	}

	now := time.Now()
	stale := 0
	for _, attempt := range attempts {
		if services.IsLate(attempt.StartedAt, attempt.Exam.DurationMinutes, now) {
			stale++
		}
	}

	if stale > 0 {
		log.Printf("%d in-progress attempts are past their time limit.", stale)
	}
}
