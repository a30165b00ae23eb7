package models

import "time"

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type GenerateRequest struct {
	Category string `json:"category" binding:"required"`
	Count    int    `json:"count"`
}

type GenerateResponse struct {
	Questions   []QuizItem `json:"questions"`
	Category    string     `json:"category"`
	GeneratedAt time.Time  `json:"generatedAt"`
	Source      string     `json:"source"`
}

type SubmitRequest struct {
	Answers  map[string]int `json:"answers" binding:"required"`
	Category string         `json:"category" binding:"required"`
}

type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// ChatAnswer is the grounded advice returned for a chat question, with the
// titles of the documents that were fed to the model as references.
type ChatAnswer struct {
	Answer     string   `json:"answer"`
	Source     string   `json:"source"`
	References []string `json:"references"`
}
