package grading

import "github.com/okaydivyansh/ecell-quiz/src/core/models"

// Grade counts how many submitted answers match the correct option of the
// question at the same position. A short answer slice undercounts silently,
// excess answers are ignored, and out-of-range answer values simply never
// match. The result is always within [0, len(questions)].
func Grade(questions []models.Question, answers []int) int {
	score := 0
	for i, question := range questions {
		if i >= len(answers) {
			break
		}
		if answers[i] == question.CorrectOptionIndex {
			score++
		}
	}
	return score
}
