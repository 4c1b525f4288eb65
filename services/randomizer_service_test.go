package services

import (
	"math/rand"
	"testing"

	"github.com/anjiri1684/exam_portal/models"
)

func makeQuestions(n int) []models.Question {
	questions := make([]models.Question, n)
	for i := range questions {
		questions[i] = models.Question{ID: uint(i + 1), CorrectAnswer: 1, Marks: 1}
	}
	return questions
}

func TestShuffleQuestionsIsAPermutation(t *testing.T) {
	questions := makeQuestions(20)
	shuffled := ShuffleQuestions(questions, rand.New(rand.NewSource(42)))

	if len(shuffled) != len(questions) {
		t.Fatalf("len = %d, want %d", len(shuffled), len(questions))
	}
	seen := make(map[uint]bool, len(shuffled))
	for _, q := range shuffled {
		if seen[q.ID] {
			t.Fatalf("question %d appears twice after shuffle", q.ID)
		}
		seen[q.ID] = true
	}
	for _, q := range questions {
		if !seen[q.ID] {
			t.Fatalf("question %d lost in shuffle", q.ID)
		}
	}
}

func TestShuffleQuestionsDeterministicUnderSeed(t *testing.T) {
	questions := makeQuestions(10)
	a := ShuffleQuestions(questions, rand.New(rand.NewSource(7)))
	b := ShuffleQuestions(questions, rand.New(rand.NewSource(7)))
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("same seed produced different orders at %d: %d vs %d", i, a[i].ID, b[i].ID)
		}
	}
}

func TestShuffleQuestionsDoesNotMutateInput(t *testing.T) {
	questions := makeQuestions(10)
	ShuffleQuestions(questions, rand.New(rand.NewSource(3)))
	for i, q := range questions {
		if q.ID != uint(i+1) {
			t.Fatalf("input slice mutated at %d", i)
		}
	}
}

func TestShuffleQuestionsEmpty(t *testing.T) {
	if got := ShuffleQuestions(nil, rand.New(rand.NewSource(1))); len(got) != 0 {
		t.Fatalf("empty exam shuffled into %d questions", len(got))
	}
}

func TestSnapshotQuestionsRecordsPositions(t *testing.T) {
	shuffled := []models.Question{
		{ID: 5, CorrectAnswer: 2, Marks: 3},
		{ID: 9, CorrectAnswer: 4, Marks: 1},
	}
	snapshot := SnapshotQuestions(77, shuffled)

	if len(snapshot) != 2 {
		t.Fatalf("snapshot len = %d, want 2", len(snapshot))
	}
	for i, row := range snapshot {
		if row.AttemptID != 77 {
			t.Errorf("row %d attempt = %d, want 77", i, row.AttemptID)
		}
		if row.Position != i+1 {
			t.Errorf("row %d position = %d, want %d", i, row.Position, i+1)
		}
		if row.QuestionID != shuffled[i].ID || row.CorrectAnswer != shuffled[i].CorrectAnswer || row.Marks != shuffled[i].Marks {
			t.Errorf("row %d = %+v, does not match source question %+v", i, row, shuffled[i])
		}
	}
}
