package service

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"peerlearn_backend/internal/config"
	"sync"
	"testing"
)

func newChatUpstream(t *testing.T) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode upstream request: %v", err)
		}
		json.NewEncoder(w).Encode(ChatCompletionResponse{
			Choices: []struct {
				Message AIChatMessage `json:"message"`
			}{
				{Message: AIChatMessage{Role: "assistant", Content: "echo:" + req.Model}},
			},
		})
	}))
}

func TestChatUsesConfiguredModel(t *testing.T) {
	upstream := newChatUpstream(t)
	defer upstream.Close()

	ai := NewAIService(config.AIConfig{BaseURL: upstream.URL, APIKey: "k", Model: "model-a"})

	got, err := ai.Chat("system", "hello")
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if got != "echo:model-a" {
		t.Fatalf("reply = %q", got)
	}

	ai.UpdateConfig(config.AIConfig{BaseURL: upstream.URL, APIKey: "k", Model: "model-b"})

	got, err = ai.Chat("system", "hello")
	if err != nil {
		t.Fatalf("chat after reload: %v", err)
	}
	if got != "echo:model-b" {
		t.Fatalf("reply after reload = %q", got)
	}
}

// Exercised under -race: config reloads must not tear requests in flight.
func TestConfigReloadDuringChats(t *testing.T) {
	upstream := newChatUpstream(t)
	defer upstream.Close()

	ai := NewAIService(config.AIConfig{BaseURL: upstream.URL, APIKey: "k", Model: "model-0"})

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			ai.UpdateConfig(config.AIConfig{
				BaseURL: upstream.URL,
				APIKey:  "k",
				Model:   fmt.Sprintf("model-%d", i),
			})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			if _, err := ai.Chat("system", "hello"); err != nil {
				t.Errorf("chat: %v", err)
				return
			}
		}
	}()

	wg.Wait()
}
