package services

import (
	"math/rand"

	"github.com/anjiri1684/exam_portal/models"
)

// ShuffleQuestions returns a new slice holding a uniformly random
// permutation of the exam's questions. The caller supplies the random
// source so attempts can be replayed under a fixed seed in tests.
func ShuffleQuestions(questions []models.Question, r *rand.Rand) []models.Question {
	shuffled := append([]models.Question(nil), questions...)
	r.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// SnapshotQuestions builds the grading snapshot for a freshly started
// attempt, recording each question's correct answer and marks at the
// position it was presented in.
func SnapshotQuestions(attemptID uint, shuffled []models.Question) []models.AttemptQuestion {
	snapshot := make([]models.AttemptQuestion, len(shuffled))
	for i, q := range shuffled {
		snapshot[i] = models.AttemptQuestion{
			AttemptID:     attemptID,
			QuestionID:    q.ID,
			CorrectAnswer: q.CorrectAnswer,
			Marks:         q.Marks,
			Position:      i + 1,
		}
	}
	return snapshot
}
