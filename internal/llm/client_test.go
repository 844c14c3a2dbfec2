package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestComplete_ReturnsAssistantReply(t *testing.T) {
	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected auth header %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"content":"You have one task today."}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zap.NewNop())
	reply := c.Complete(context.Background(), []Message{
		{Role: "system", Content: "You are an assistant."},
		{Role: "user", Content: "What's on today?"},
	})

	if reply != "You have one task today." {
		t.Errorf("got reply %q", reply)
	}
	if gotReq.Model != defaultModel {
		t.Errorf("got model %q, want %q", gotReq.Model, defaultModel)
	}
	if gotReq.MaxTokens != defaultMaxTokens {
		t.Errorf("got max_tokens %d, want %d", gotReq.MaxTokens, defaultMaxTokens)
	}
	if gotReq.Temperature != defaultTemperature {
		t.Errorf("got temperature %v, want %v", gotReq.Temperature, defaultTemperature)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("conversation not forwarded in order: %+v", gotReq.Messages)
	}
}

func TestComplete_FallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := NewClient(srv.URL, "test-key", zap.NewNop())
	reply := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply != FallbackReply {
		t.Errorf("got %q, want fallback", reply)
	}
}

func TestComplete_FallsBackOnProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth_error"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", zap.NewNop())
	reply := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply != FallbackReply {
		t.Errorf("got %q, want fallback", reply)
	}
}

func TestComplete_FallsBackOnEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", zap.NewNop())
	reply := c.Complete(context.Background(), []Message{{Role: "user", Content: "hi"}})

	if reply != FallbackReply {
		t.Errorf("got %q, want fallback", reply)
	}
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	c := NewClient("", "key", zap.NewNop())
	if c.baseURL != DefaultBaseURL {
		t.Errorf("got base URL %q", c.baseURL)
	}
}
