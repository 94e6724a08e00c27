package grading

import (
	"testing"

	"github.com/okaydivyansh/ecell-quiz/src/core/models"
)

func sampleQuestions() []models.Question {
	return []models.Question{
		{Text: "q1", Options: []string{"a", "b", "c"}, CorrectOptionIndex: 1},
		{Text: "q2", Options: []string{"a", "b", "c"}, CorrectOptionIndex: 0},
		{Text: "q3", Options: []string{"a", "b", "c"}, CorrectOptionIndex: 2},
	}
}

func TestGrade(t *testing.T) {
	cases := []struct {
		name    string
		answers []int
		want    int
	}{
		{"all correct", []int{1, 0, 2}, 3},
		{"one wrong", []int{1, 1, 2}, 2},
		{"short answers undercount", []int{1}, 1},
		{"short answers no match", []int{0}, 0},
		{"excess answers ignored", []int{1, 0, 2, 9, 9}, 3},
		{"no answers", nil, 0},
		{"out of range never matches", []int{7, -1, 99}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Grade(sampleQuestions(), tc.answers)
			if got != tc.want {
				t.Errorf("Grade(%v) = %d, want %d", tc.answers, got, tc.want)
			}
		})
	}
}

func TestGradeEmptyQuiz(t *testing.T) {
	if got := Grade(nil, []int{1, 2, 3}); got != 0 {
		t.Errorf("Grade on empty quiz = %d, want 0", got)
	}
}
