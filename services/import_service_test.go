package services

import (
	"strings"
	"testing"
)

func records(lines ...[]string) [][]string {
	header := []string{"text", "option1", "option2", "option3", "option4", "correct_answer", "marks"}
	return append([][]string{header}, lines...)
}

func TestParseQuestionRecordsValidFile(t *testing.T) {
	rows, rowErrors := ParseQuestionRecords(records(
		[]string{"What is 2+2?", "3", "4", "5", "6", "2", "2"},
		[]string{"Capital of Kenya?", "Nairobi", "Mombasa", "Kisumu", "Eldoret", "1", ""},
	))

	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrors)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0].CorrectAnswer != 2 || rows[0].Marks != 2 {
		t.Errorf("row 0 = %+v, want correct=2 marks=2", rows[0])
	}
	if rows[1].Marks != 1 {
		t.Errorf("row 1 marks = %d, want default 1", rows[1].Marks)
	}
}

func TestParseQuestionRecordsHeaderOrderIndependent(t *testing.T) {
	rows, rowErrors := ParseQuestionRecords([][]string{
		{"correct_answer", "text", "option4", "option3", "option2", "option1"},
		{"3", "Pick the third option", "d", "c", "b", "a"},
	})
	if len(rowErrors) != 0 {
		t.Fatalf("unexpected row errors: %+v", rowErrors)
	}
	if len(rows) != 1 || rows[0].CorrectAnswer != 3 || rows[0].Option1 != "a" || rows[0].Option4 != "d" {
		t.Fatalf("rows = %+v, header mapping broken", rows)
	}
}

func TestParseQuestionRecordsMissingColumn(t *testing.T) {
	_, rowErrors := ParseQuestionRecords([][]string{
		{"text", "option1", "option2", "option3", "option4"},
		{"q", "a", "b", "c", "d"},
	})
	if len(rowErrors) != 1 {
		t.Fatalf("rowErrors = %+v, want exactly one header error", rowErrors)
	}
	if rowErrors[0].Line != 1 || !strings.Contains(rowErrors[0].Message, "correct_answer") {
		t.Fatalf("got %+v, want line 1 error naming correct_answer", rowErrors[0])
	}
}

func TestParseQuestionRecordsBadRowsCollected(t *testing.T) {
	rows, rowErrors := ParseQuestionRecords(records(
		[]string{"", "a", "b", "c", "d", "1", ""},         // missing text
		[]string{"q", "a", "b", "c", "d", "five", ""},     // non-numeric answer
		[]string{"q", "a", "b", "c", "d", "7", ""},        // out of range
		[]string{"q", "a", "b", "c", "d", "1", "zero"},    // bad marks
		[]string{"fine", "a", "b", "c", "d", "4", "3"},    // good
	))

	if len(rows) != 1 || rows[0].Text != "fine" {
		t.Fatalf("rows = %+v, want only the valid row", rows)
	}
	if len(rowErrors) != 4 {
		t.Fatalf("rowErrors = %+v, want 4", rowErrors)
	}
	wantLines := []int{2, 3, 4, 5}
	for i, e := range rowErrors {
		if e.Line != wantLines[i] {
			t.Errorf("error %d on line %d, want %d (%s)", i, e.Line, wantLines[i], e.Message)
		}
	}
}

func TestParseQuestionRecordsEmptyFile(t *testing.T) {
	rows, rowErrors := ParseQuestionRecords(nil)
	if rows != nil || len(rowErrors) != 1 {
		t.Fatalf("got rows=%v errors=%+v, want a single file-level error", rows, rowErrors)
	}
}
