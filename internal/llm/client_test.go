package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"finlit-agent/internal/apperrors"
)

func TestClient_Complete(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Use only official banking apps."}}]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "test-key", "test-model")
	answer, err := client.Complete(context.Background(), "How do I stay safe online?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "Use only official banking apps." {
		t.Errorf("unexpected completion: %q", answer)
	}
	if gotAuth != "Bearer test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
}

func TestClient_CompleteServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model")
	_, err := client.Complete(context.Background(), "prompt")

	var unavailable *apperrors.GenerativeUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected GenerativeUnavailableError, got %v", err)
	}
	if unavailable.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500 in error, got %d", unavailable.StatusCode)
	}
}

func TestClient_CompleteUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, "", "test-model")
	_, err := client.Complete(context.Background(), "prompt")

	var unavailable *apperrors.GenerativeUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected GenerativeUnavailableError, got %v", err)
	}
}

func TestClient_CompleteNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "", "test-model")
	answer, err := client.Complete(context.Background(), "prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "" {
		t.Errorf("expected empty completion, got %q", answer)
	}
}
