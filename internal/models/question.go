package models

import "time"

// DocTypeQuestion tags curated quiz questions in the document store.
const DocTypeQuestion = "question"

// Question is a curated quiz item persisted with its answer in the durable
// store. The answer index is never serialized to clients.
type Question struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Question    string    `bson:"question" json:"question"`
	Options     []string  `bson:"options" json:"options"`
	Answer      int       `bson:"answer" json:"-"`
	Category    string    `bson:"category" json:"category"`
	Explanation string    `bson:"explanation" json:"explanation"`
	Type        string    `bson:"type" json:"type"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// QuizItem is a question as handed to a client. Generated items carry their
// correct option only inside the identifier; curated items are resolved from
// the store at scoring time. Either way no answer key travels with the item.
type QuizItem struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
	AIGenerated bool     `json:"aiGenerated"`
}
