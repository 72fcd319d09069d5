package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"minerva/pkg/errors"
)

func testConfig(baseURL string) Config {
	return Config{
		APIKey:         "test-key",
		EngineID:       "test-cx",
		MaxResults:     3,
		Timeout:        2 * time.Second,
		RequestsPerMin: 6000,
		BaseURL:        baseURL,
	}
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient(Config{APIKey: "key"})
	assert.ErrorIs(t, err, errors.ErrSearchNotConfigured)

	_, err = NewClient(Config{EngineID: "cx"})
	assert.ErrorIs(t, err, errors.ErrSearchNotConfigured)
}

func TestSearchParsesResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "test-cx", r.URL.Query().Get("cx"))
		assert.Equal(t, "quantum computing", r.URL.Query().Get("q"))
		assert.Equal(t, "3", r.URL.Query().Get("num"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"title": "Quantum 101", "link": "https://example.com/q", "snippet": "A primer."},
				{"title": "Qubits", "link": "https://example.com/qb", "snippet": "Deep dive."}
			]
		}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "quantum computing")
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Quantum 101", results[0].Title)
	assert.Equal(t, "https://example.com/qb", results[1].Link)
}

func TestSearchRetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"title": "Recovered", "link": "https://example.com", "snippet": "ok"}]}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	results, err := client.Search(context.Background(), "retry me")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Recovered", results[0].Title)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestSearchDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"code": 400, "message": "invalid argument"}}`))
	}))
	defer server.Close()

	client, err := NewClient(testConfig(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "bad request")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrSearchFailed)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestSearchRejectsEmptyQuery(t *testing.T) {
	client, err := NewClient(testConfig("http://unused.invalid"))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "")
	assert.ErrorIs(t, err, errors.ErrInvalidInput)
}

func TestFormatResults(t *testing.T) {
	out := FormatResults("go", []Result{
		{Title: "The Go Programming Language", Link: "https://go.dev", Snippet: "Build simple, secure, scalable systems."},
	})
	assert.Contains(t, out, `Search results for "go"`)
	assert.Contains(t, out, "1. The Go Programming Language")
	assert.Contains(t, out, "https://go.dev")

	assert.Equal(t, `No results found for "none".`, FormatResults("none", nil))
}
