package repository

import (
	"context"
	"errors"
	"time"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// QuestionRepository stores curated quiz questions together with their
// answers. Generated items never pass through here.
type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindByCategory(ctx context.Context, category string) ([]models.Question, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "questions.find", Err: err}
	}
	defer cur.Close(ctx)

	questions := []models.Question{}
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, &apperrors.StoreUnavailableError{Op: "questions.find", Err: err}
		}
		questions = append(questions, q)
	}
	if err := cur.Err(); err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "questions.find", Err: err}
	}
	return questions, nil
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "questions.findByID", Err: err}
	}
	return &question, nil
}

func (r *QuestionRepository) Create(ctx context.Context, question *models.Question) error {
	question.Type = models.DocTypeQuestion
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}
	if question.ID == "" {
		question.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.Col.InsertOne(ctx, question); err != nil {
		return &apperrors.StoreUnavailableError{Op: "questions.create", Err: err}
	}
	return nil
}
