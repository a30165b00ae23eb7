package models

import "time"

// DocTypeProgress tags progress records in the document store.
const DocTypeProgress = "progress"

// ScoredResult is the per-item outcome of a submission. The correct answer is
// revealed here, after the user has committed to a choice.
type ScoredResult struct {
	QuestionID    string `bson:"questionId" json:"questionId"`
	UserAnswer    int    `bson:"userAnswer" json:"userAnswer"`
	CorrectAnswer int    `bson:"correctAnswer" json:"correctAnswer"`
	IsCorrect     bool   `bson:"isCorrect" json:"isCorrect"`
}

// ProgressRecord is the append-only history entry written once per submission.
type ProgressRecord struct {
	ID             string         `bson:"_id,omitempty" json:"id"`
	UserID         string         `bson:"userId" json:"userId"`
	Category       string         `bson:"category" json:"category"`
	Score          int            `bson:"score" json:"score"`
	TotalQuestions int            `bson:"totalQuestions" json:"totalQuestions"`
	Answers        []ScoredResult `bson:"answers" json:"answers"`
	Date           time.Time      `bson:"date" json:"date"`
	Type           string         `bson:"type" json:"type"`
}

// SubmitResult is the aggregate returned to the client after scoring.
type SubmitResult struct {
	Score          int            `json:"score"`
	TotalQuestions int            `json:"totalQuestions"`
	Percentage     int            `json:"percentage"`
	Results        []ScoredResult `json:"results"`
}
