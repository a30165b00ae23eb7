package repository

import (
	"context"
	"time"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// KnowledgeRepository reads the curated knowledge corpus. It is the pipeline's
// only view of knowledge content: fetch everything tagged as such, no other
// logic.
type KnowledgeRepository struct {
	Col *mongo.Collection
}

func NewKnowledgeRepository(db *mongo.Database) *KnowledgeRepository {
	return &KnowledgeRepository{Col: db.Collection("financial_content")}
}

// FetchAll returns every knowledge document. An unreachable store is a
// StoreUnavailableError; an empty corpus is an empty slice, not an error —
// callers treat "no knowledge" as degraded but valid.
func (r *KnowledgeRepository) FetchAll(ctx context.Context) ([]models.KnowledgeDocument, error) {
	cur, err := r.Col.Find(ctx, bson.M{"type": models.DocTypeKnowledge})
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "knowledge.fetchAll", Err: err}
	}
	defer cur.Close(ctx)

	docs := []models.KnowledgeDocument{}
	for cur.Next(ctx) {
		var d models.KnowledgeDocument
		if err := cur.Decode(&d); err != nil {
			return nil, &apperrors.StoreUnavailableError{Op: "knowledge.fetchAll", Err: err}
		}
		docs = append(docs, d)
	}
	if err := cur.Err(); err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "knowledge.fetchAll", Err: err}
	}
	return docs, nil
}

func (r *KnowledgeRepository) Create(ctx context.Context, doc *models.KnowledgeDocument) error {
	doc.Type = models.DocTypeKnowledge
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = time.Now()
	}
	if doc.ID == "" {
		doc.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.Col.InsertOne(ctx, doc); err != nil {
		return &apperrors.StoreUnavailableError{Op: "knowledge.create", Err: err}
	}
	return nil
}

func (r *KnowledgeRepository) Count(ctx context.Context) (int64, error) {
	n, err := r.Col.CountDocuments(ctx, bson.M{"type": models.DocTypeKnowledge})
	if err != nil {
		return 0, &apperrors.StoreUnavailableError{Op: "knowledge.count", Err: err}
	}
	return n, nil
}
