package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/models"
	"finlit-agent/internal/quiz"
)

type fakeLLM struct {
	response string
	err      error
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	return f.response, f.err
}

type fakeQuestionStore struct {
	byID map[string]*models.Question
	err  error
}

func (f *fakeQuestionStore) FindByID(ctx context.Context, id string) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	q, ok := f.byID[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return q, nil
}

func (f *fakeQuestionStore) FindByCategory(ctx context.Context, category string) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Question{}
	for _, q := range f.byID {
		if category == "" || q.Category == category {
			out = append(out, *q)
		}
	}
	return out, nil
}

type fakeProgressStore struct {
	records []*models.ProgressRecord
	err     error
}

func (f *fakeProgressStore) Create(ctx context.Context, record *models.ProgressRecord) error {
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, record)
	return nil
}

type fakeEventSink struct {
	published []string
}

func (f *fakeEventSink) Publish(eventType string, payload interface{}) error {
	f.published = append(f.published, eventType)
	return nil
}

const generatedTwo = `[
  {"question":"Q1","options":["A","B","C","D"],"correctAnswer":2,"explanation":"E1"},
  {"question":"Q2","options":["A","B","C","D"],"correctAnswer":0,"explanation":"E2"}
]`

func TestGenerate_FromModel(t *testing.T) {
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, &fakeLLM{response: generatedTwo}, nil)

	items, source, err := svc.Generate(context.Background(), "Budgeting", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if source != SourceModel {
		t.Errorf("expected source %q, got %q", SourceModel, source)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}

	wantAnswers := []int{2, 0}
	for i, item := range items {
		if !item.AIGenerated {
			t.Errorf("item %d not marked as generated", i)
		}
		if item.Category != "Budgeting" {
			t.Errorf("item %d category %q", i, item.Category)
		}
		ref := quiz.Parse(item.ID)
		if ref.Generated == nil {
			t.Fatalf("item %d id %q is not a generated id", i, item.ID)
		}
		if ref.Generated.Answer != wantAnswers[i] {
			t.Errorf("item %d id encodes answer %d, want %d", i, ref.Generated.Answer, wantAnswers[i])
		}
		if ref.Generated.Ordinal != i {
			t.Errorf("item %d id encodes ordinal %d", i, ref.Generated.Ordinal)
		}
	}
}

func TestGenerate_FallbackOnModelFailure(t *testing.T) {
	client := &fakeLLM{err: &apperrors.GenerativeUnavailableError{Err: errors.New("connection refused")}}
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, client, nil)

	items, source, err := svc.Generate(context.Background(), "UPI Safety", 5)
	if err != nil {
		t.Fatalf("generation must not fail when the model is down: %v", err)
	}
	if source != SourceFallback {
		t.Errorf("expected source %q, got %q", SourceFallback, source)
	}
	if len(items) != 5 {
		t.Errorf("expected 5 fallback items, got %d", len(items))
	}
	for i, item := range items {
		if len(item.Options) != 4 {
			t.Errorf("item %d has %d options", i, len(item.Options))
		}
		if !strings.HasPrefix(item.ID, quiz.GeneratedIDPrefix) {
			t.Errorf("item %d id %q missing generated prefix", i, item.ID)
		}
	}
}

func TestGenerate_FallbackOnMalformedOutput(t *testing.T) {
	client := &fakeLLM{response: "I'm sorry, I cannot help with that."}
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, client, nil)

	items, source, err := svc.Generate(context.Background(), "Budgeting", 3)
	if err != nil {
		t.Fatalf("generation must not fail on unparseable output: %v", err)
	}
	if source != SourceFallback {
		t.Errorf("expected source %q, got %q", SourceFallback, source)
	}
	if len(items) == 0 {
		t.Error("expected fallback items")
	}
}

func TestGenerate_DefaultCount(t *testing.T) {
	client := &fakeLLM{err: errors.New("down")}
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, client, nil)

	items, _, err := svc.Generate(context.Background(), "Budgeting", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != DefaultQuestionCount {
		t.Errorf("expected %d items for count 0, got %d", DefaultQuestionCount, len(items))
	}
}

func generatedID(ordinal, answer int) string {
	return quiz.GeneratedID{IssuedAt: time.Now(), Ordinal: ordinal, Answer: answer}.String()
}

func TestScore_GeneratedItems(t *testing.T) {
	progress := &fakeProgressStore{}
	svc := NewQuizService(&fakeQuestionStore{}, progress, &fakeLLM{}, nil)

	idRight := generatedID(0, 2)
	idWrong := generatedID(1, 1)
	answers := map[string]int{
		idRight: 2, // matches encoded answer
		idWrong: 3,
	}

	result, err := svc.Score(context.Background(), "user-1", "Budgeting", answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 1 || result.TotalQuestions != 2 || result.Percentage != 50 {
		t.Errorf("got score=%d total=%d pct=%d, want 1/2/50", result.Score, result.TotalQuestions, result.Percentage)
	}

	if len(progress.records) != 1 {
		t.Fatalf("expected 1 progress record, got %d", len(progress.records))
	}
	rec := progress.records[0]
	if rec.UserID != "user-1" || rec.Score != 1 || rec.TotalQuestions != 2 {
		t.Errorf("progress record wrong: %+v", rec)
	}
}

func TestScore_CuratedItems(t *testing.T) {
	questions := &fakeQuestionStore{byID: map[string]*models.Question{
		"q1": {ID: "q1", Answer: 3, Category: "Budgeting"},
	}}
	svc := NewQuizService(questions, &fakeProgressStore{}, &fakeLLM{}, nil)

	result, err := svc.Score(context.Background(), "user-1", "Budgeting", map[string]int{"q1": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 1 || result.TotalQuestions != 1 || result.Percentage != 100 {
		t.Errorf("got score=%d total=%d pct=%d, want 1/1/100", result.Score, result.TotalQuestions, result.Percentage)
	}
	if !result.Results[0].IsCorrect || result.Results[0].CorrectAnswer != 3 {
		t.Errorf("per-item result wrong: %+v", result.Results[0])
	}
}

func TestScore_SkipsUnknownCuratedIDs(t *testing.T) {
	questions := &fakeQuestionStore{byID: map[string]*models.Question{}}
	svc := NewQuizService(questions, &fakeProgressStore{}, &fakeLLM{}, nil)

	answers := map[string]int{
		"vanished-id":     1,
		generatedID(0, 0): 0,
	}

	result, err := svc.Score(context.Background(), "user-1", "Budgeting", answers)
	if err != nil {
		t.Fatalf("unknown ids must be skipped, not fail: %v", err)
	}
	if result.TotalQuestions != 1 {
		t.Errorf("unknown id counted in total: %d", result.TotalQuestions)
	}
	if result.Score != 1 || result.Percentage != 100 {
		t.Errorf("got score=%d pct=%d, want 1/100", result.Score, result.Percentage)
	}
}

func TestScore_EmptySubmission(t *testing.T) {
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, &fakeLLM{}, nil)

	result, err := svc.Score(context.Background(), "user-1", "Budgeting", map[string]int{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Score != 0 || result.TotalQuestions != 0 || result.Percentage != 0 {
		t.Errorf("empty submission should score 0/0/0, got %+v", result)
	}
}

func TestScore_ProgressFailureIsNotFatal(t *testing.T) {
	progress := &fakeProgressStore{err: &apperrors.StoreUnavailableError{Op: "progress.create", Err: errors.New("down")}}
	svc := NewQuizService(&fakeQuestionStore{}, progress, &fakeLLM{}, nil)

	result, err := svc.Score(context.Background(), "user-1", "Budgeting", map[string]int{generatedID(0, 1): 1})
	if err != nil {
		t.Fatalf("scoring must not fail because history storage failed: %v", err)
	}
	if result.Score != 1 {
		t.Errorf("expected score 1, got %d", result.Score)
	}
}

func TestScore_Rescoring(t *testing.T) {
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, &fakeLLM{}, nil)
	answers := map[string]int{generatedID(0, 2): 2, generatedID(1, 1): 0}

	first, err := svc.Score(context.Background(), "user-1", "Budgeting", answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Score(context.Background(), "user-1", "Budgeting", answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Score != second.Score || first.Percentage != second.Percentage {
		t.Errorf("re-scoring the same submission diverged: %+v vs %+v", first, second)
	}
}

func TestScore_PublishesEvent(t *testing.T) {
	events := &fakeEventSink{}
	svc := NewQuizService(&fakeQuestionStore{}, &fakeProgressStore{}, &fakeLLM{}, events)

	if _, err := svc.Score(context.Background(), "user-1", "Budgeting", map[string]int{generatedID(0, 0): 0}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.published) != 1 || events.published[0] != "quiz.submitted" {
		t.Errorf("expected quiz.submitted event, got %v", events.published)
	}
}
