package llmprovider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mom-planner/config"
	"mom-planner/pkg/gemini"
)

func newMockGemini(t *testing.T, handler func(req gemini.GenerateRequest) (int, string)) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req gemini.GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		status, body := handler(req)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestNew_Transports(t *testing.T) {
	ctx := context.Background()

	p, err := New(ctx, config.GeminiConfig{APIKey: "k", Model: "m", Transport: "rest"})
	require.NoError(t, err)
	assert.Equal(t, "gemini", p.Name())
	assert.Equal(t, "m", p.Model())

	p, err = New(ctx, config.GeminiConfig{APIKey: "k", Transport: "sdk"})
	require.NoError(t, err)
	assert.Equal(t, "genai", p.Name())
	assert.Equal(t, gemini.DefaultModel, p.Model())

	_, err = New(ctx, config.GeminiConfig{APIKey: "k", Transport: "carrier-pigeon"})
	assert.ErrorIs(t, err, ErrUnknownTransport)

	_, err = New(ctx, config.GeminiConfig{Transport: "rest"})
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestGeminiAdapter_GenerateContent(t *testing.T) {
	var captured gemini.GenerateRequest
	ts := newMockGemini(t, func(req gemini.GenerateRequest) (int, string) {
		captured = req
		return http.StatusOK, `{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "[]"}]}}],
			"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 2, "totalTokenCount": 12}
		}`
	})

	client := gemini.NewClient("k")
	client.SetAPIURL(ts.URL)
	adapter := NewGeminiAdapter(client)

	temp := 0.6
	resp, err := adapter.GenerateContent(context.Background(), &Request{
		Prompt:           "plan my day",
		Temperature:      &temp,
		ResponseMIMEType: gemini.MIMETypeJSON,
		ResponseSchema:   gemini.PlanResponseSchema(),
	})
	require.NoError(t, err)

	assert.Equal(t, "[]", resp.Text())
	assert.Equal(t, 12, resp.Usage.TotalTokens)
	assert.Equal(t, "gemini", resp.ProviderName)

	require.Len(t, captured.Contents, 1)
	assert.Equal(t, "plan my day", captured.Contents[0].Parts[0].Text)
	require.NotNil(t, captured.GenerationConfig)
	assert.Equal(t, gemini.MIMETypeJSON, captured.GenerationConfig.ResponseMIMEType)
	require.NotNil(t, captured.GenerationConfig.Temperature)
	assert.InDelta(t, 0.6, *captured.GenerationConfig.Temperature, 1e-9)
	assert.Equal(t, gemini.TypeArray, captured.GenerationConfig.ResponseSchema.Type)
}

func TestGeminiAdapter_Errors(t *testing.T) {
	t.Run("invalid request", func(t *testing.T) {
		adapter := NewGeminiAdapter(gemini.NewClient("k"))
		_, err := adapter.GenerateContent(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidRequest)
	})

	t.Run("api error", func(t *testing.T) {
		ts := newMockGemini(t, func(gemini.GenerateRequest) (int, string) {
			return http.StatusTooManyRequests, `{"error": "quota"}`
		})
		client := gemini.NewClient("k")
		client.SetAPIURL(ts.URL)

		_, err := NewGeminiAdapter(client).GenerateContent(context.Background(), &Request{Prompt: "x"})
		var perr *ProviderError
		require.True(t, errors.As(err, &perr))
		assert.Equal(t, "gemini", perr.Provider)
		var apiErr *gemini.APIError
		assert.True(t, errors.As(err, &apiErr))
	})

	t.Run("empty candidates", func(t *testing.T) {
		ts := newMockGemini(t, func(gemini.GenerateRequest) (int, string) {
			return http.StatusOK, `{"candidates": []}`
		})
		client := gemini.NewClient("k")
		client.SetAPIURL(ts.URL)

		_, err := NewGeminiAdapter(client).GenerateContent(context.Background(), &Request{Prompt: "x"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("candidate without text", func(t *testing.T) {
		ts := newMockGemini(t, func(gemini.GenerateRequest) (int, string) {
			return http.StatusOK, `{"candidates": [{"content": {"role": "model", "parts": [{"text": ""}]}}]}`
		})
		client := gemini.NewClient("k")
		client.SetAPIURL(ts.URL)

		_, err := NewGeminiAdapter(client).GenerateContent(context.Background(), &Request{Prompt: "x"})
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})

	t.Run("timeout", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(2 * time.Second):
			}
		}))
		defer ts.Close()
		client := gemini.NewClient("k")
		client.SetAPIURL(ts.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err := NewGeminiAdapter(client).GenerateContent(ctx, &Request{Prompt: "x"})
		assert.ErrorIs(t, err, ErrProviderTimeout)
	})
}

func TestGenAIAdapter_GenerateContent(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, ":generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"role": "model", "parts": [{"text": "[{\"time\":\"9:00 AM\"}]"}]}}]}`))
	}))
	defer ts.Close()

	p, err := New(context.Background(), config.GeminiConfig{APIKey: "k", Transport: "sdk", APIURL: ts.URL})
	require.NoError(t, err)

	temp := 0.6
	resp, err := p.GenerateContent(context.Background(), &Request{
		Prompt:           "plan",
		Temperature:      &temp,
		ResponseMIMEType: gemini.MIMETypeJSON,
		ResponseSchema:   gemini.PlanResponseSchema(),
	})
	require.NoError(t, err)
	assert.Equal(t, `[{"time":"9:00 AM"}]`, resp.Text())
	assert.Equal(t, "genai", resp.ProviderName)
	assert.Contains(t, body, "generationConfig")
}

func TestToGenAISchema(t *testing.T) {
	assert.Nil(t, toGenAISchema(nil))

	s := toGenAISchema(gemini.PlanResponseSchema())
	require.NotNil(t, s.Items)
	assert.Equal(t, "ARRAY", string(s.Type))
	assert.Len(t, s.Items.Properties, 5)
	assert.Equal(t, []string{"Productivity", "Physical", "Mental"}, s.Items.Properties["category"].Enum)
}
