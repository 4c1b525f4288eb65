package websocket

import (
	"log"
	"strconv"
	"time"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/services"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

type timerMessage struct {
	RemainingSeconds int  `json:"remaining_seconds"`
	Submitted        bool `json:"submitted"`
}

// ServeAttemptTimer streams the advisory countdown for an in-progress
// attempt, one message per second, and closes once the clock hits zero or
// the attempt is submitted elsewhere. The feed is display-only; the server
// never rejects a submission because this countdown ran out.
func ServeAttemptTimer(conn *websocket.Conn) {
	defer conn.Close()

	attemptID, err := strconv.ParseUint(conn.Params("attemptId"), 10, 64)
	if err != nil {
		conn.WriteJSON(fiber.Map{"error": "Invalid attempt id"})
		return
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		var attempt models.Attempt
		err := database.DB.Preload("Exam").First(&attempt, "id = ?", attemptID).Error
		if err != nil {
			conn.WriteJSON(fiber.Map{"error": "Attempt not found"})
			return
		}

		remaining := services.RemainingSeconds(attempt.StartedAt, attempt.Exam.DurationMinutes, attempt.IsSubmitted, time.Now())
		msg := timerMessage{RemainingSeconds: remaining, Submitted: attempt.IsSubmitted}
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("Timer feed closed for attempt %d: %v", attemptID, err)
			return
		}

		if remaining == 0 || attempt.IsSubmitted {
			return
		}
	}
}
