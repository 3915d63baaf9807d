package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_CompleteJSON_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if !strings.Contains(r.URL.Path, "models/gemini-2.5-flash:generateContent") {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("Expected test-key in query")
		}

		var body Request
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}
		if body.SystemInstruction == nil || body.SystemInstruction.Parts[0].Text != "system" {
			t.Error("Expected system instruction")
		}
		if body.GenerationConfig.ResponseMimeType != "application/json" {
			t.Error("Expected JSON response mime type")
		}
		if len(body.Contents) != 1 || body.Contents[0].Parts[0].Text != "user prompt" {
			t.Error("Expected user prompt in contents")
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "{\"is_coding"}, {"text": "_related\": true}"}], "role": "model"}}
			],
			"usageMetadata": {"totalTokenCount": 12}
		}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	got, err := client.CompleteJSON(context.Background(), "system", "user prompt")
	if err != nil {
		t.Fatalf("CompleteJSON failed: %v", err)
	}
	// Multi-part candidates are concatenated.
	if got != `{"is_coding_related": true}` {
		t.Errorf("Unexpected response: %q", got)
	}
}

func TestClient_CompleteJSON_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`overloaded`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("Expected error for 503 response")
	}
	if !strings.Contains(err.Error(), "status 503") {
		t.Errorf("Expected status in error, got: %v", err)
	}
}

func TestClient_CompleteJSON_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument", "status": "INVALID_ARGUMENT"}}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	if err == nil {
		t.Fatal("Expected API error")
	}
	if !strings.Contains(err.Error(), "invalid argument") {
		t.Errorf("Expected API message in error, got: %v", err)
	}
}

func TestClient_CompleteJSON_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	if err == nil || !strings.Contains(err.Error(), "no completion returned") {
		t.Errorf("Expected no-completion error, got: %v", err)
	}
}

func TestClient_CompleteJSON_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.CompleteJSON(context.Background(), "system", "user")
	if err == nil || !strings.Contains(err.Error(), "API key not configured") {
		t.Errorf("Expected missing-key error, got: %v", err)
	}
}

func TestClient_CompleteJSON_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Config{APIKey: "test-key", BaseURL: server.URL})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.CompleteJSON(ctx, "system", "user")
	if err == nil {
		t.Fatal("Expected error for cancelled context")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	if client.Model() != "gemini-2.5-flash" {
		t.Errorf("Expected default model, got %s", client.Model())
	}
	if client.baseURL != "https://generativelanguage.googleapis.com/v1beta" {
		t.Errorf("Unexpected default base URL: %s", client.baseURL)
	}

	custom := NewClient(Config{APIKey: "k", Model: "gemini-2.5-pro"})
	if custom.Model() != "gemini-2.5-pro" {
		t.Errorf("Expected model override, got %s", custom.Model())
	}
}
