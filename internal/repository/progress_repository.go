package repository

import (
	"context"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProgressRepository appends and reads per-user quiz history. Records are
// written once per submission and never updated.
type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) Create(ctx context.Context, record *models.ProgressRecord) error {
	record.Type = models.DocTypeProgress
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.Col.InsertOne(ctx, record); err != nil {
		return &apperrors.StoreUnavailableError{Op: "progress.create", Err: err}
	}
	return nil
}

// FindByUser returns all progress records for a user, most recent first.
func (r *ProgressRepository) FindByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := r.Col.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "progress.findByUser", Err: err}
	}
	defer cur.Close(ctx)

	records := []models.ProgressRecord{}
	if err := cur.All(ctx, &records); err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "progress.findByUser", Err: err}
	}
	return records, nil
}
