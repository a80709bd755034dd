package titles_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"blogsmith/config"
	"blogsmith/titles"
)

const sampleContent = "This is a reasonably long piece of blog content about Go services, " +
	"title generation, and the plumbing in between."

func newTestClient(t *testing.T, handler http.HandlerFunc) (*titles.Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return titles.New("test-key", config.GroqConfig{BaseURL: srv.URL, Model: "test-model"}), srv
}

func chatResponse(content string) string {
	body := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"content": content}},
		},
	}
	buf, _ := json.Marshal(body)
	return string(buf)
}

func TestFilterTitles(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "three clean lines",
			raw:  "How Go Services Scale in Production\nA Field Guide to Service Plumbing\nTitle Generation Done Right",
			want: []string{
				"How Go Services Scale in Production",
				"A Field Guide to Service Plumbing",
				"Title Generation Done Right",
			},
		},
		{
			name: "dedupes preserving first-seen order",
			raw:  "Same Title Twice\nAnother Good Title\nSame Title Twice\nA Third Distinct Title",
			want: []string{"Same Title Twice", "Another Good Title", "A Third Distinct Title"},
		},
		{
			name: "drops short, long, empty and single-word lines",
			raw: "ok\n\nSingleword\n" + strings.Repeat("x y ", 40) + "\n" +
				"A Perfectly Reasonable Title",
			want: []string{"A Perfectly Reasonable Title"},
		},
		{
			name: "caps at three",
			raw:  "First Usable Title\nSecond Usable Title\nThird Usable Title\nFourth Usable Title",
			want: []string{"First Usable Title", "Second Usable Title", "Third Usable Title"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, titles.FilterTitles(tc.raw))
		})
	}
}

func TestFilterTitlesProperties(t *testing.T) {
	raw := "a\nbb cc\n" + strings.Repeat("long ", 30) + "\nReal Title One\nReal Title One\nReal Title Two\nword\nReal Title Three\nReal Title Four"
	got := titles.FilterTitles(raw)

	assert.LessOrEqual(t, len(got), 3)
	seen := map[string]bool{}
	for _, title := range got {
		assert.Greater(t, len(title), 5)
		assert.Less(t, len(title), 100)
		assert.GreaterOrEqual(t, len(strings.Fields(title)), 2)
		assert.False(t, seen[title], "duplicate suggestion %q", title)
		seen[title] = true
	}
}

func TestSuggestSuccess(t *testing.T) {
	var gotReq map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(chatResponse("How Go Services Scale in Production\nA Field Guide to Service Plumbing\nTitle Generation Done Right")))
	})

	result := client.Suggest(context.Background(), sampleContent)

	assert.True(t, result.Success)
	assert.Len(t, result.Suggestions, 3)
	assert.Equal(t, "groq_api", result.MethodUsed)
	assert.Equal(t, len(sampleContent), result.ContentLength)
	assert.NotZero(t, result.CleanedContentLength)
	assert.Empty(t, result.Error)

	assert.Equal(t, "test-model", gotReq["model"])
	assert.Equal(t, float64(150), gotReq["max_tokens"])
	assert.Equal(t, 0.7, gotReq["temperature"])
}

func TestSuggestContentTooShort(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote call made for short content")
	})

	result := client.Suggest(context.Background(), "too short")

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "too short")
	assert.Empty(t, result.Suggestions)
}

func TestSuggestUnconfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("remote call made without a credential")
	}))
	defer srv.Close()

	client := titles.New("", config.GroqConfig{BaseURL: srv.URL})
	assert.False(t, client.Configured())

	result := client.Suggest(context.Background(), sampleContent)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "not configured")
}

func TestSuggestRemoteFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"rate limited"}}`, http.StatusTooManyRequests)
	})

	result := client.Suggest(context.Background(), sampleContent)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "Groq API call failed")
	assert.Empty(t, result.Suggestions)
}

func TestSuggestMalformedResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	})

	result := client.Suggest(context.Background(), sampleContent)

	assert.False(t, result.Success)
	assert.Contains(t, result.Error, "no choices")
}
