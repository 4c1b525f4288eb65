package services

import (
	"testing"

	"github.com/anjiri1684/exam_portal/models"
)

func twoQuestionSnapshot() []models.AttemptQuestion {
	return []models.AttemptQuestion{
		{AttemptID: 1, QuestionID: 10, CorrectAnswer: 2, Marks: 1, Position: 1},
		{AttemptID: 1, QuestionID: 11, CorrectAnswer: 3, Marks: 1, Position: 2},
	}
}

func TestScoreAttempt(t *testing.T) {
	cases := []struct {
		name        string
		answers     map[string]string
		wantScore   int
		wantCorrect int
		wantPct     float64
	}{
		{
			name:        "one correct",
			answers:     map[string]string{"question_10": "2", "question_11": "1"},
			wantScore:   1,
			wantCorrect: 1,
			wantPct:     50.0,
		},
		{
			name:        "all correct",
			answers:     map[string]string{"question_10": "2", "question_11": "3"},
			wantScore:   2,
			wantCorrect: 2,
			wantPct:     100.0,
		},
		{
			name:        "no answers",
			answers:     map[string]string{},
			wantScore:   0,
			wantCorrect: 0,
			wantPct:     0.0,
		},
		{
			name:        "unparseable answer is just wrong",
			answers:     map[string]string{"question_10": "banana", "question_11": "3"},
			wantScore:   1,
			wantCorrect: 1,
			wantPct:     50.0,
		},
		{
			name:        "answer for unknown question ignored",
			answers:     map[string]string{"question_99": "2", "question_10": "2"},
			wantScore:   1,
			wantCorrect: 1,
			wantPct:     50.0,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ScoreAttempt(twoQuestionSnapshot(), c.answers)
			if got.Score != c.wantScore {
				t.Errorf("Score = %d, want %d", got.Score, c.wantScore)
			}
			if got.CorrectCount != c.wantCorrect {
				t.Errorf("CorrectCount = %d, want %d", got.CorrectCount, c.wantCorrect)
			}
			if got.Percentage != c.wantPct {
				t.Errorf("Percentage = %v, want %v", got.Percentage, c.wantPct)
			}
			if got.TotalQuestions != 2 || got.TotalMarks != 2 {
				t.Errorf("totals = (%d questions, %d marks), want (2, 2)", got.TotalQuestions, got.TotalMarks)
			}
		})
	}
}

func TestScoreAttemptEmptySnapshot(t *testing.T) {
	got := ScoreAttempt(nil, map[string]string{"question_1": "1"})
	if got.Percentage != 0 {
		t.Fatalf("Percentage = %v, want 0 when there are no marks to earn", got.Percentage)
	}
	if got.Score != 0 || got.TotalMarks != 0 || got.TotalQuestions != 0 {
		t.Fatalf("empty snapshot scored %+v, want all zeros", got)
	}
}

func TestScoreAttemptWeightedMarks(t *testing.T) {
	snapshot := []models.AttemptQuestion{
		{QuestionID: 1, CorrectAnswer: 1, Marks: 3, Position: 1},
		{QuestionID: 2, CorrectAnswer: 4, Marks: 2, Position: 2},
	}
	got := ScoreAttempt(snapshot, map[string]string{"question_2": "4"})
	if got.Score != 2 || got.TotalMarks != 5 {
		t.Fatalf("Score/TotalMarks = %d/%d, want 2/5", got.Score, got.TotalMarks)
	}
	if got.Percentage != 40.0 {
		t.Fatalf("Percentage = %v, want 40", got.Percentage)
	}
}

func TestScoreAttemptOrderIndependent(t *testing.T) {
	snapshot := twoQuestionSnapshot()
	reversed := []models.AttemptQuestion{snapshot[1], snapshot[0]}
	answers := map[string]string{"question_10": "2", "question_11": "1"}

	a := ScoreAttempt(snapshot, answers)
	b := ScoreAttempt(reversed, answers)
	if a != b {
		t.Fatalf("presentation order changed the score: %+v vs %+v", a, b)
	}
}
