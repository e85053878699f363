package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"topup-admin/internal/config"
)

func testAssistantConfig(baseURL, apiKey string) config.AssistantConfig {
	return config.AssistantConfig{
		APIKey:      apiKey,
		BaseURL:     baseURL,
		Model:       "llama-3.1-70b-versatile",
		MaxTokens:   800,
		Temperature: 0.3,
		Timeout:     5 * time.Second,
	}
}

func completionBody(content string) string {
	b, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	return string(b)
}

func TestGroqComplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama-3.1-70b-versatile", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "RINGKASAN PENJUALAN")
		assert.Equal(t, "berapa revenue?", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(completionBody("Revenue total Rp 1.200.000")))
	}))
	defer srv.Close()

	client := NewGroqClient(testAssistantConfig(srv.URL, "test-key"), zerolog.Nop())
	reply, err := client.Complete(context.Background(), RenderContext(testContext()), "berapa revenue?")
	require.NoError(t, err)
	assert.Equal(t, "Revenue total Rp 1.200.000", reply)
}

func TestGroqCompleteErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream down", http.StatusBadGateway)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		}},
		{"no choices", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}},
		{"blank content", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody("   ")))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			client := NewGroqClient(testAssistantConfig(srv.URL, "test-key"), zerolog.Nop())
			_, err := client.Complete(context.Background(), "ctx", "q")
			assert.Error(t, err)
		})
	}
}

func TestGroqEnabled(t *testing.T) {
	assert.True(t, NewGroqClient(testAssistantConfig("http://x", "k"), zerolog.Nop()).Enabled())
	assert.False(t, NewGroqClient(testAssistantConfig("http://x", ""), zerolog.Nop()).Enabled())

	var nilClient *GroqClient
	assert.False(t, nilClient.Enabled())
}

func TestAssistantRespondFallback(t *testing.T) {
	qc := testContext()
	synth := newTestSynthesizer()

	t.Run("no key means no network attempt", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			t.Error("disabled client must not call out")
		}))
		defer srv.Close()

		a := New(synth, NewGroqClient(testAssistantConfig(srv.URL, ""), zerolog.Nop()), zerolog.Nop())
		reply := a.Respond(context.Background(), "berapa margin free fire?", qc)
		assert.Contains(t, reply, "Margin Free Fire")
	})

	t.Run("upstream failure falls back to rules", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusInternalServerError)
		}))
		defer srv.Close()

		a := New(synth, NewGroqClient(testAssistantConfig(srv.URL, "k"), zerolog.Nop()), zerolog.Nop())
		reply := a.Respond(context.Background(), "berapa margin free fire?", qc)
		assert.Contains(t, reply, "Margin Free Fire")
	})

	t.Run("upstream reply wins when available", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(completionBody("jawaban model")))
		}))
		defer srv.Close()

		a := New(synth, NewGroqClient(testAssistantConfig(srv.URL, "k"), zerolog.Nop()), zerolog.Nop())
		reply := a.Respond(context.Background(), "berapa margin free fire?", qc)
		assert.Equal(t, "jawaban model", reply)
	})

	t.Run("nil client uses rules", func(t *testing.T) {
		a := New(synth, nil, zerolog.Nop())
		reply := a.Respond(context.Background(), "halo", qc)
		assert.NotEmpty(t, reply)
	})
}
