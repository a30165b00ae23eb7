package service

import (
	"context"

	"finlit-agent/internal/models"
)

// ProgressReader reads per-user history, most recent first.
type ProgressReader interface {
	FindByUser(ctx context.Context, userID string) ([]models.ProgressRecord, error)
}

type ProgressService struct {
	Progress ProgressReader
}

func NewProgressService(progress ProgressReader) *ProgressService {
	return &ProgressService{Progress: progress}
}

func (s *ProgressService) History(ctx context.Context, userID string) ([]models.ProgressRecord, error) {
	return s.Progress.FindByUser(ctx, userID)
}
