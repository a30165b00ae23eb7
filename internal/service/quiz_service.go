package service

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"finlit-agent/internal/apperrors"
	"finlit-agent/internal/llm"
	"finlit-agent/internal/models"
	"finlit-agent/internal/quiz"
	"finlit-agent/internal/rag"
)

// DefaultQuestionCount is used when a generation request omits the count.
const DefaultQuestionCount = 5

// GenerativeClient is the quiz service's view of the language model.
type GenerativeClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// QuestionStore resolves curated questions by id or category.
type QuestionStore interface {
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByCategory(ctx context.Context, category string) ([]models.Question, error)
}

// ProgressStore appends submission history.
type ProgressStore interface {
	Create(ctx context.Context, record *models.ProgressRecord) error
}

// Sources reported alongside generated question sets.
const (
	SourceModel    = "generative-model"
	SourceFallback = "fallback-bank"
)

// EventSink receives service events. A nil sink disables publishing.
type EventSink interface {
	Publish(eventType string, payload interface{}) error
}

type QuizService struct {
	Questions QuestionStore
	Progress  ProgressStore
	LLM       GenerativeClient
	Events    EventSink
}

func NewQuizService(questions QuestionStore, progress ProgressStore, client GenerativeClient, events EventSink) *QuizService {
	return &QuizService{Questions: questions, Progress: progress, LLM: client, Events: events}
}

// Generate produces count quiz items for a category. The model's output is
// untrusted; if it cannot be obtained or parsed the pre-authored bank is
// substituted, so the result is always a non-empty, fully specified set.
// Items are never persisted: each identifier encodes its own answer.
func (s *QuizService) Generate(ctx context.Context, category string, count int) ([]models.QuizItem, string, error) {
	if count <= 0 {
		count = DefaultQuestionCount
	}

	source := SourceModel
	raw, err := s.LLM.Complete(ctx, rag.GenerationPrompt(category, count))

	var items []llm.RawItem
	if err != nil {
		log.Printf("quiz generation failed, using fallback bank: %v", err)
		items = llm.FallbackItems(category, count)
		source = SourceFallback
	} else {
		items, err = llm.ExtractItems(raw)
		if err != nil {
			log.Printf("could not parse generated questions, using fallback bank: %v", err)
			items = llm.FallbackItems(category, count)
			source = SourceFallback
		}
	}
	items = llm.Normalize(items)

	issuedAt := time.Now()
	out := make([]models.QuizItem, len(items))
	for i, it := range items {
		id := quiz.GeneratedID{IssuedAt: issuedAt, Ordinal: i, Answer: it.CorrectAnswer}
		out[i] = models.QuizItem{
			ID:          id.String(),
			Question:    it.Question,
			Options:     it.Options,
			Category:    category,
			Explanation: it.Explanation,
			AIGenerated: true,
		}
	}

	if s.Events != nil {
		if err := s.Events.Publish("quiz.generated", map[string]interface{}{
			"category": category,
			"count":    len(out),
			"source":   source,
		}); err != nil {
			log.Printf("failed to publish quiz.generated: %v", err)
		}
	}
	return out, source, nil
}

// ListCurated returns the stored question bank, optionally filtered by
// category.
func (s *QuizService) ListCurated(ctx context.Context, category string) ([]models.Question, error) {
	return s.Questions.FindByCategory(ctx, category)
}

// Score grades a submission. Generated items are graded from their own
// identifier with no store access; curated items are resolved by id, and an
// id with no record is skipped rather than counted. The progress record is
// best-effort: scoring feedback is never withheld because history storage
// failed.
func (s *QuizService) Score(ctx context.Context, userID, category string, answers map[string]int) (*models.SubmitResult, error) {
	ids := make([]string, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	score := 0
	results := make([]models.ScoredResult, 0, len(ids))
	for _, id := range ids {
		chosen := answers[id]

		var correct int
		ref := quiz.Parse(id)
		if ref.Generated != nil {
			correct = ref.Generated.Answer
		} else {
			q, err := s.Questions.FindByID(ctx, ref.CuratedID)
			if errors.Is(err, apperrors.ErrNotFound) {
				log.Printf("skipping unknown question %q in submission", id)
				continue
			}
			if err != nil {
				return nil, err
			}
			correct = q.Answer
		}

		isCorrect := chosen == correct
		if isCorrect {
			score++
		}
		results = append(results, models.ScoredResult{
			QuestionID:    id,
			UserAnswer:    chosen,
			CorrectAnswer: correct,
			IsCorrect:     isCorrect,
		})
	}

	total := len(results)
	percentage := 0
	if total > 0 {
		percentage = int(math.Round(float64(score) / float64(total) * 100))
	}

	record := &models.ProgressRecord{
		UserID:         userID,
		Category:       category,
		Score:          score,
		TotalQuestions: total,
		Answers:        results,
		Date:           time.Now(),
	}
	if err := s.Progress.Create(ctx, record); err != nil {
		log.Printf("failed to save progress for user %s: %v", userID, err)
	}

	if s.Events != nil {
		if err := s.Events.Publish("quiz.submitted", map[string]interface{}{
			"userId":   userID,
			"category": category,
			"score":    score,
			"total":    total,
		}); err != nil {
			log.Printf("failed to publish quiz.submitted: %v", err)
		}
	}

	return &models.SubmitResult{
		Score:          score,
		TotalQuestions: total,
		Percentage:     percentage,
		Results:        results,
	}, nil
}
