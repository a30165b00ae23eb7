package service

import (
	"context"
	"errors"
	"testing"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"
)

type fakeKnowledgeStore struct {
	docs []models.KnowledgeDocument
	err  error
}

func (f *fakeKnowledgeStore) FetchAll(ctx context.Context) ([]models.KnowledgeDocument, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.docs, nil
}

func chatCorpus() []models.KnowledgeDocument {
	return []models.KnowledgeDocument{
		{Title: "UPI Safety Guidelines", Content: "Never share your UPI PIN with anyone."},
		{Title: "Budgeting Basics", Content: "The 50/30/20 rule splits income between needs, wants and savings."},
	}
}

func TestAsk_GroundedAnswer(t *testing.T) {
	knowledge := &fakeKnowledgeStore{docs: chatCorpus()}
	client := &fakeLLM{response: "Never share your PIN, even with people you trust."}
	svc := NewChatService(knowledge, client, "test-model")

	answer, err := svc.Ask(context.Background(), "Should I share my UPI PIN?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Answer != client.response {
		t.Errorf("unexpected answer: %q", answer.Answer)
	}
	if answer.Source != "test-model" {
		t.Errorf("expected source test-model, got %q", answer.Source)
	}
	if len(answer.References) == 0 || answer.References[0] != "UPI Safety Guidelines" {
		t.Errorf("expected UPI document cited first, got %v", answer.References)
	}
}

func TestAsk_FallbackOnModelFailure(t *testing.T) {
	knowledge := &fakeKnowledgeStore{docs: chatCorpus()}
	client := &fakeLLM{err: &apperrors.GenerativeUnavailableError{Err: errors.New("timeout")}}
	svc := NewChatService(knowledge, client, "test-model")

	answer, err := svc.Ask(context.Background(), "Should I share my UPI PIN?")
	if err != nil {
		t.Fatalf("a model failure must degrade, not fail: %v", err)
	}
	if answer.Answer != FallbackAnswer {
		t.Errorf("expected fallback answer, got %q", answer.Answer)
	}
	if answer.Source != SourceFallback {
		t.Errorf("expected source %q, got %q", SourceFallback, answer.Source)
	}
	if len(answer.References) == 0 {
		t.Error("references should still name the retrieved documents")
	}
}

func TestAsk_FallbackOnEmptyCompletion(t *testing.T) {
	knowledge := &fakeKnowledgeStore{docs: chatCorpus()}
	svc := NewChatService(knowledge, &fakeLLM{response: "   "}, "test-model")

	answer, err := svc.Ask(context.Background(), "Should I share my UPI PIN?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer.Answer != FallbackAnswer || answer.Source != SourceFallback {
		t.Errorf("blank completion should degrade to the fallback, got %+v", answer)
	}
}

func TestAsk_StoreFailureIsFatal(t *testing.T) {
	knowledge := &fakeKnowledgeStore{err: &apperrors.StoreUnavailableError{Op: "knowledge.fetchAll", Err: errors.New("down")}}
	svc := NewChatService(knowledge, &fakeLLM{response: "irrelevant"}, "test-model")

	_, err := svc.Ask(context.Background(), "Should I share my UPI PIN?")
	var unavailable *apperrors.StoreUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected StoreUnavailableError, got %v", err)
	}
}

func TestAsk_EmptyCorpus(t *testing.T) {
	knowledge := &fakeKnowledgeStore{docs: []models.KnowledgeDocument{}}
	svc := NewChatService(knowledge, &fakeLLM{response: "General advice."}, "test-model")

	answer, err := svc.Ask(context.Background(), "How do I budget?")
	if err != nil {
		t.Fatalf("an empty corpus is degraded, not an error: %v", err)
	}
	if answer.Answer != "General advice." {
		t.Errorf("unexpected answer: %q", answer.Answer)
	}
	if len(answer.References) != 0 {
		t.Errorf("no documents were retrieved, references should be empty: %v", answer.References)
	}
}
