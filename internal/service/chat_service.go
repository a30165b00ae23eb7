package service

import (
	"context"
	"log"
	"strings"

	"finlit-agent/internal/models"
	"finlit-agent/internal/rag"
)

// FallbackAnswer is returned when the model fails or produces nothing.
const FallbackAnswer = "I apologize, but I could not generate a response at this time."

// KnowledgeStore fetches the retrieval corpus.
type KnowledgeStore interface {
	FetchAll(ctx context.Context) ([]models.KnowledgeDocument, error)
}

// ChatService answers free-form questions grounded in the knowledge corpus.
type ChatService struct {
	Knowledge KnowledgeStore
	LLM       GenerativeClient
	Source    string // reported to clients, typically the model name
}

func NewChatService(knowledge KnowledgeStore, client GenerativeClient, source string) *ChatService {
	return &ChatService{Knowledge: knowledge, LLM: client, Source: source}
}

// Ask retrieves the most relevant documents, grounds a prompt with them, and
// returns the model's answer with the cited titles. An unreachable store
// fails the operation; a failed or empty completion degrades to the fixed
// apology message instead.
func (s *ChatService) Ask(ctx context.Context, question string) (*models.ChatAnswer, error) {
	corpus, err := s.Knowledge.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	ranked := rag.Rank(question, corpus, rag.DefaultTopK)
	references := make([]string, 0, len(ranked))
	for _, doc := range ranked {
		references = append(references, doc.Title)
	}

	answer, err := s.LLM.Complete(ctx, rag.GroundingPrompt(ranked, question))
	if err != nil || strings.TrimSpace(answer) == "" {
		if err != nil {
			log.Printf("chat completion failed: %v", err)
		}
		return &models.ChatAnswer{
			Answer:     FallbackAnswer,
			Source:     SourceFallback,
			References: references,
		}, nil
	}

	return &models.ChatAnswer{
		Answer:     answer,
		Source:     s.Source,
		References: references,
	}, nil
}
