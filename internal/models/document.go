package models

import "time"

// DocTypeKnowledge tags documents that belong to the curated knowledge corpus.
const DocTypeKnowledge = "financial_content"

// KnowledgeDocument is one entry of the curated financial-literacy corpus.
// Documents are seeded once and read-only afterwards.
type KnowledgeDocument struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Category  string    `bson:"category" json:"category"`
	Tags      []string  `bson:"tags" json:"tags"`
	Type      string    `bson:"type" json:"type"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// RankedDocument pairs a knowledge document with its keyword relevance score.
type RankedDocument struct {
	KnowledgeDocument
	Score int `json:"score"`
}
