package commentary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testSessionID = "8f14e45f-ea2b-4c1a-9d7e-000000000001"

// mockRelay creates a test server that validates the request and returns
// the given response body verbatim.
func mockRelay(t *testing.T, validateBody func(body []byte) error, status int, response string) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		expectedPath := "/api/sessions/" + testSessionID + "/response/"
		if r.URL.Path != expectedPath {
			t.Errorf("Expected path %s, got %s", expectedPath, r.URL.Path)
			http.Error(w, "Not found", http.StatusNotFound)
			return
		}

		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected Content-Type application/json, got %s", r.Header.Get("Content-Type"))
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Failed to read body: %v", err)
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}

		if validateBody != nil {
			if err := validateBody(body); err != nil {
				t.Errorf("Body validation failed: %v", err)
				http.Error(w, "Bad request", http.StatusBadRequest)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
}

func newTestClient(baseURL string) *Client {
	return NewClient(&ClientConfig{BaseURL: baseURL})
}

func TestGenerateCurrentFormat(t *testing.T) {
	validate := func(body []byte) error {
		var req Request
		if err := json.Unmarshal(body, &req); err != nil {
			return err
		}
		if req.Prompt == "" {
			t.Error("expected a non-empty prompt")
		}
		if req.GameState != "settled" {
			t.Errorf("expected game_state settled, got %q", req.GameState)
		}
		return nil
	}

	server := mockRelay(t, validate, http.StatusOK,
		`{"message": "Seventeen black, a fine hit!", "metadata": {"session_id": "`+testSessionID+`", "game_state": "settled"}}`)
	defer server.Close()

	client := newTestClient(server.URL)
	msg, err := client.Generate(context.Background(), testSessionID, &Request{
		Prompt:    "roulette settled: staked 10, won 360",
		GameState: "settled",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if msg.Text != "Seventeen black, a fine hit!" {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if msg.SessionID != testSessionID {
		t.Errorf("unexpected session id %q", msg.SessionID)
	}
	if msg.GameState != "settled" {
		t.Errorf("unexpected game state %q", msg.GameState)
	}
}

func TestGenerateLegacyFormat(t *testing.T) {
	server := mockRelay(t, nil, http.StatusOK,
		`{"response": "Snake eyes! The line goes down.", "session_id": "`+testSessionID+`", "game_state": "settled"}`)
	defer server.Close()

	client := newTestClient(server.URL)
	msg, err := client.Generate(context.Background(), testSessionID, &Request{Prompt: "craps settled"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if msg.Text != "Snake eyes! The line goes down." {
		t.Errorf("unexpected text %q", msg.Text)
	}
	if msg.SessionID != testSessionID {
		t.Errorf("unexpected session id %q", msg.SessionID)
	}
}

func TestGenerateEmptyCommentary(t *testing.T) {
	server := mockRelay(t, nil, http.StatusOK, `{"metadata": {"session_id": "x"}}`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.Generate(context.Background(), testSessionID, &Request{Prompt: "p"}); err == nil {
		t.Error("expected error for empty commentary")
	}
}

func TestGenerateRelayError(t *testing.T) {
	server := mockRelay(t, nil, http.StatusBadGateway, `upstream model unavailable`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.Generate(context.Background(), testSessionID, &Request{Prompt: "p"}); err == nil {
		t.Error("expected error for non-200 status")
	}
}

func TestGenerateMalformedResponse(t *testing.T) {
	server := mockRelay(t, nil, http.StatusOK, `{not json`)
	defer server.Close()

	client := newTestClient(server.URL)
	if _, err := client.Generate(context.Background(), testSessionID, &Request{Prompt: "p"}); err == nil {
		t.Error("expected error for malformed response")
	}
}

func TestGenerateUnreachableRelay(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")
	if _, err := client.Generate(context.Background(), testSessionID, &Request{Prompt: "p"}); err == nil {
		t.Error("expected error for unreachable relay")
	}
}

func TestNewClientWithHTTPClient(t *testing.T) {
	customClient := &http.Client{
		Timeout: 60 * time.Second,
	}

	client := NewClientWithHTTPClient(&ClientConfig{BaseURL: "http://localhost:8080"}, customClient)

	if client.httpClient != customClient {
		t.Error("expected custom HTTP client to be used")
	}
	if client.config.Timeout == 0 {
		t.Error("expected an unset timeout to be defaulted")
	}
}

func TestNotifyDeliversInBackground(t *testing.T) {
	got := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"message": "ok"}`)
		close(got)
	}))
	defer server.Close()

	client := NewClientWithHTTPClient(&ClientConfig{BaseURL: server.URL}, server.Client())
	client.Notify(testSessionID, "roulette settled", "settled")

	select {
	case <-got:
	case <-time.After(5 * time.Second):
		t.Fatal("relay was never called")
	}
}
