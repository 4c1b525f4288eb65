package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var rowValidate = validator.New()

// QuestionRow is one validated line of a bulk question upload.
type QuestionRow struct {
	Text          string `validate:"required"`
	Option1       string `validate:"required"`
	Option2       string `validate:"required"`
	Option3       string `validate:"required"`
	Option4       string `validate:"required"`
	CorrectAnswer int    `validate:"min=1,max=4"`
	Marks         int    `validate:"min=1"`
}

// RowError pinpoints a rejected upload line. Line numbers are 1-based and
// count the header, matching what the uploader sees in their spreadsheet.
type RowError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

var requiredColumns = []string{"text", "option1", "option2", "option3", "option4", "correct_answer"}

// ParseQuestionRecords turns raw CSV records (header included) into question
// rows. Columns are matched by header name, not position, and `marks` is
// optional with a default of 1. Every bad line is reported rather than
// stopping at the first, so staff can fix a whole file in one pass.
func ParseQuestionRecords(records [][]string) ([]QuestionRow, []RowError) {
	if len(records) == 0 {
		return nil, []RowError{{Line: 1, Message: "file is empty"}}
	}

	columns := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, []RowError{{Line: 1, Message: fmt.Sprintf("missing required column %q", name)}}
		}
	}
	marksCol, hasMarks := columns["marks"]

	var rows []QuestionRow
	var rowErrors []RowError

	for i, record := range records[1:] {
		line := i + 2

		field := func(col string) string {
			idx := columns[col]
			if idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		row := QuestionRow{
			Text:    field("text"),
			Option1: field("option1"),
			Option2: field("option2"),
			Option3: field("option3"),
			Option4: field("option4"),
			Marks:   1,
		}

		correct, err := strconv.Atoi(field("correct_answer"))
		if err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: "correct_answer must be a number between 1 and 4"})
			continue
		}
		row.CorrectAnswer = correct

		if hasMarks && marksCol < len(record) && strings.TrimSpace(record[marksCol]) != "" {
			marks, err := strconv.Atoi(strings.TrimSpace(record[marksCol]))
			if err != nil {
				rowErrors = append(rowErrors, RowError{Line: line, Message: "marks must be a positive number"})
				continue
			}
			row.Marks = marks
		}

		if err := rowValidate.Struct(row); err != nil {
			rowErrors = append(rowErrors, RowError{Line: line, Message: rowErrorMessage(err)})
			continue
		}

		rows = append(rows, row)
	}

	return rows, rowErrors
}

func rowErrorMessage(err error) string {
	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) && len(invalid) > 0 {
		switch invalid[0].Field() {
		case "CorrectAnswer":
			return "correct_answer must be a number between 1 and 4"
		case "Marks":
			return "marks must be a positive number"
		default:
			return fmt.Sprintf("%s is required", strings.ToLower(invalid[0].Field()))
		}
	}
	return err.Error()
}
