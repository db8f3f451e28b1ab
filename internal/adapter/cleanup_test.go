package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinbook/internal/config"
	"pinbook/internal/logger"
)

func newTestCleaner(t *testing.T, serverURL, apiKey string) TextCleaner {
	t.Helper()

	c, err := NewGeminiCleaner(config.ClientCleanup{
		APIKey:         apiKey,
		BaseURL:        serverURL,
		Model:          "gemini-3-flash-preview",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	return c
}

func TestClean_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-3-flash-preview:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req generateRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "えーとですね明日の")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "明日の14時に集合。\n"}]}}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestCleaner(t, srv.URL, "test-key")

	got := c.Clean(context.Background(), "えーとですね明日の 14時に 集合で")
	assert.Equal(t, "明日の14時に集合。", got)
}

func TestClean_NoAPIKey_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected without an api key")
	}))
	defer srv.Close()

	c := newTestCleaner(t, srv.URL, "")

	raw := "raw transcript"
	assert.Equal(t, raw, c.Clean(context.Background(), raw))
}

func TestClean_EmptyInput_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for blank input")
	}))
	defer srv.Close()

	c := newTestCleaner(t, srv.URL, "test-key")

	assert.Equal(t, "   ", c.Clean(context.Background(), "   "))
}

func TestClean_ServerError_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestCleaner(t, srv.URL, "test-key")

	raw := "raw transcript"
	assert.Equal(t, raw, c.Clean(context.Background(), raw))
}

func TestClean_EmptyCandidates_Passthrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer srv.Close()

	c := newTestCleaner(t, srv.URL, "test-key")

	raw := "raw transcript"
	assert.Equal(t, raw, c.Clean(context.Background(), raw))
}

func TestExtractGeneratedText_JoinsParts(t *testing.T) {
	out := generateResponse{}
	require.NoError(t, json.Unmarshal([]byte(`{
		"candidates": [{"content": {"parts": [{"text": "first "}, {"text": "second"}]}}]
	}`), &out))

	got := extractGeneratedText(out)
	assert.Equal(t, "first second", got)
	assert.False(t, strings.HasSuffix(got, " "))
}
