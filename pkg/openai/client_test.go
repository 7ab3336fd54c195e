package openai_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tsukasa1111/BurgerLendar/pkg/openai"
)

func TestNew(t *testing.T) {
	if _, err := openai.New(openai.Config{}); err == nil {
		t.Fatalf("expected error when API key is missing")
	}

	c, err := openai.New(openai.Config{APIKey: "test-key"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Model() != openai.DefaultModel {
		t.Errorf("expected default model %q, got %q", openai.DefaultModel, c.Model())
	}
}

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"bad key","type":"invalid_request_error"}}`))
			return
		}

		var req openai.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if len(req.Messages) > 0 && req.Messages[0].Content == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom","type":"server_error"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "chatcmpl-1",
			"model": "gpt-3.5-turbo",
			"choices": [
				{"index": 0, "message": {"role": "assistant", "content": "07:00 - Wake up"}, "finish_reason": "stop"}
			],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	client, err := openai.New(openai.Config{APIKey: "test-api-key", BaseURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "system", Content: "Hello"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Choices) != 1 {
			t.Fatalf("expected 1 choice, got %d", len(resp.Choices))
		}
		if resp.Choices[0].Message.Content != "07:00 - Wake up" {
			t.Errorf("unexpected content: %q", resp.Choices[0].Message.Content)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
	})

	t.Run("API Error Surface", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &openai.Request{
			Messages: []openai.Message{{Role: "user", Content: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error on 500 response")
		}
	})
}
