package services

import (
	"fmt"
	"strconv"

	"github.com/anjiri1684/exam_portal/models"
)

type ScoreSummary struct {
	Score          int     `json:"score"`
	TotalMarks     int     `json:"total_marks"`
	CorrectCount   int     `json:"correct_count"`
	TotalQuestions int     `json:"total_questions"`
	Percentage     float64 `json:"percentage"`
}

// AnswerKey is the form-field name a question's answer is submitted under.
func AnswerKey(questionID uint) string {
	return fmt.Sprintf("question_%d", questionID)
}

// ScoreAttempt grades a snapshot against the submitted answers. Answers are
// keyed "question_<id>" with the chosen option number as the value. A missing
// answer scores nothing, and so does a value that does not parse as the
// question's correct option — garbage input is treated as a wrong answer,
// never as a request failure.
func ScoreAttempt(snapshot []models.AttemptQuestion, answers map[string]string) ScoreSummary {
	summary := ScoreSummary{TotalQuestions: len(snapshot)}

	for _, q := range snapshot {
		summary.TotalMarks += q.Marks

		selected, ok := answers[AnswerKey(q.QuestionID)]
		if !ok {
			continue
		}
		chosen, err := strconv.Atoi(selected)
		if err != nil || chosen != q.CorrectAnswer {
			continue
		}
		summary.Score += q.Marks
		summary.CorrectCount++
	}

	if summary.TotalMarks > 0 {
		summary.Percentage = float64(summary.Score) / float64(summary.TotalMarks) * 100
	}
	return summary
}
