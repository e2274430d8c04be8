package models

// QuizQuestion is the structured object returned by the AI gateway for a
// lesson quiz: one question, exactly four options, and the index of the
// correct answer.
type QuizQuestion struct {
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	AnswerIndex int      `json:"answerIndex"`
}
