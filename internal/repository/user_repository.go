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

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, &apperrors.StoreUnavailableError{Op: "users.findByUsername", Err: err}
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	user.Type = models.DocTypeUser
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.ID == "" {
		user.ID = primitive.NewObjectID().Hex()
	}
	if _, err := r.Col.InsertOne(ctx, user); err != nil {
		return &apperrors.StoreUnavailableError{Op: "users.create", Err: err}
	}
	return nil
}
