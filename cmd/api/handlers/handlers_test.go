package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsmith/cmd/api/services"
	"blogsmith/models"
	"blogsmith/titles"
)

type stubTranscriber struct {
	result models.TranscriptionResult
	calls  int
}

func (s *stubTranscriber) Transcribe(ctx context.Context, path string) models.TranscriptionResult {
	s.calls++
	return s.result
}

func (s *stubTranscriber) Configured() bool { return true }

type memoryStore struct {
	records []models.AudioTranscription
}

func (m *memoryStore) Create(ctx context.Context, t *models.AudioTranscription) (string, error) {
	m.records = append(m.records, *t)
	return "abc123", nil
}

func (m *memoryStore) List(ctx context.Context) ([]models.AudioTranscription, error) {
	return m.records, nil
}

type memoryMedia struct{}

func (memoryMedia) SaveAudio(originalName string, r io.Reader) (string, error) {
	io.Copy(io.Discard, r)
	return "audio/" + originalName, nil
}

type stubSuggester struct {
	result titles.Result
	calls  int
}

func (s *stubSuggester) Suggest(ctx context.Context, content string) titles.Result {
	s.calls++
	return s.result
}

func (s *stubSuggester) Configured() bool { return true }

type memoryBlogStore struct {
	posts []models.BlogPost
	err   error
}

func (m *memoryBlogStore) Create(ctx context.Context, p *models.BlogPost) (*models.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.posts = append(m.posts, *p)
	return p, nil
}

func (m *memoryBlogStore) List(ctx context.Context) ([]models.BlogPost, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.posts, nil
}

func newTranscriptionService(t *testing.T, tr *stubTranscriber, store *memoryStore) *services.TranscriptionService {
	t.Helper()
	svc, err := services.NewTranscriptionService(tr, store, memoryMedia{}, t.TempDir())
	require.NoError(t, err)
	return svc
}

func multipartAudio(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func performRequest(handler gin.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	ginCtx, _ := gin.CreateTestContext(recorder)
	ginCtx.Request = req
	handler(ginCtx)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func TestTranscribeHandlerMissingFile(t *testing.T) {
	tr := &stubTranscriber{}
	handler := TranscribeHandler(newTranscriptionService(t, tr, &memoryStore{}))

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe/", nil)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "no audio file provided", body["error"])
	assert.Zero(t, tr.calls)
}

func TestTranscribeHandlerRejectsExtension(t *testing.T) {
	tr := &stubTranscriber{}
	handler := TranscribeHandler(newTranscriptionService(t, tr, &memoryStore{}))

	payload, contentType := multipartAudio(t, "audio_file", "notes.txt", []byte("plain text"))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe/", payload)
	req.Header.Set("Content-Type", contentType)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Contains(t, body["error"], "unsupported file type")
	assert.Zero(t, tr.calls)
}

func TestTranscribeHandlerRejectsOversizedFile(t *testing.T) {
	tr := &stubTranscriber{}
	handler := TranscribeHandler(newTranscriptionService(t, tr, &memoryStore{}))

	payload, contentType := multipartAudio(t, "audio_file", "big.mp3", bytes.Repeat([]byte("a"), MaxUploadBytes+1))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe/", payload)
	req.Header.Set("Content-Type", contentType)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Contains(t, body["error"], "file too large")
	assert.Zero(t, tr.calls)
}

func TestTranscribeHandlerSuccess(t *testing.T) {
	tr := &stubTranscriber{result: models.TranscriptionResult{
		Success:       true,
		FullText:      "[00:00 - 00:02]: SPEAKER_00: hello",
		Segments:      []models.Segment{{End: 2, Text: "hello", Speaker: "SPEAKER_00", Confidence: 1.0}},
		SpeakersCount: 1,
		Duration:      2.0,
	}}
	store := &memoryStore{}
	handler := TranscribeHandler(newTranscriptionService(t, tr, store))

	payload, contentType := multipartAudio(t, "audio_file", "meeting.mp3", []byte("audio bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe/", payload)
	req.Header.Set("Content-Type", contentType)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "abc123", body["transcription_id"])
	assert.Equal(t, float64(1), body["speakers_count"])
	assert.Len(t, store.records, 1)
}

func TestTranscribeHandlerFailedResultStillOK(t *testing.T) {
	tr := &stubTranscriber{result: models.FailedTranscription("generation failed: quota exceeded")}
	handler := TranscribeHandler(newTranscriptionService(t, tr, &memoryStore{}))

	payload, contentType := multipartAudio(t, "audio_file", "meeting.mp3", []byte("audio"))
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe/", payload)
	req.Header.Set("Content-Type", contentType)
	recorder := performRequest(handler, req)

	// remote failures come back inside the payload, not as an HTTP error
	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "generation failed")
	assert.NotContains(t, body, "transcription_id")
}

func TestTranscriptionHistoryHandler(t *testing.T) {
	store := &memoryStore{}
	store.Create(context.Background(), &models.AudioTranscription{
		AudioFile:     "audio/a.mp3",
		Transcription: models.TranscriptionResult{Success: true, FullText: "hi"},
	})
	handler := TranscriptionHistoryHandler(newTranscriptionService(t, &stubTranscriber{}, store))

	req := httptest.NewRequest(http.MethodGet, "/api/transcriptions/", nil)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["transcriptions"], 1)
}

func TestSuggestTitlesHandlerValidation(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "not json", payload: "plain text"},
		{name: "missing content", payload: `{}`},
		{name: "empty content", payload: `{"content": ""}`},
		{name: "content too long", payload: `{"content": "` + strings.Repeat("a", 10001) + `"}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			suggester := &stubSuggester{}
			handler := SuggestTitlesHandler(services.NewTitleService(suggester))

			req := httptest.NewRequest(http.MethodPost, "/api/suggest-titles/", strings.NewReader(testCase.payload))
			req.Header.Set("Content-Type", "application/json")
			recorder := performRequest(handler, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeBody(t, recorder)
			assert.Equal(t, "invalid input data", body["error"])
			assert.NotEmpty(t, body["details"])
			assert.Zero(t, suggester.calls)
		})
	}
}

func TestSuggestTitlesHandlerSuccess(t *testing.T) {
	suggester := &stubSuggester{result: titles.Result{
		Success:     true,
		Suggestions: []string{"Scaling the Ingest Pipeline", "Lessons From a Rewrite"},
		MethodUsed:  "groq_api",
	}}
	handler := SuggestTitlesHandler(services.NewTitleService(suggester))

	req := httptest.NewRequest(http.MethodPost, "/api/suggest-titles/",
		strings.NewReader(`{"content": "A long enough piece of blog content about Go services."}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["suggestions"], 2)
	assert.Equal(t, "groq_api", body["method_used"])
}

func TestCreateBlogPostHandler(t *testing.T) {
	store := &memoryBlogStore{}
	handler := CreateBlogPostHandler(services.NewBlogService(store))

	req := httptest.NewRequest(http.MethodPost, "/api/blog-posts/",
		strings.NewReader(`{"title": "First Post", "content": "Hello world", "author": "ana"}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	require.Len(t, store.posts, 1)
	assert.Equal(t, "First Post", store.posts[0].Title)
}

func TestCreateBlogPostHandlerValidation(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{name: "missing title", payload: `{"content": "body"}`},
		{name: "missing content", payload: `{"title": "t"}`},
		{name: "title too long", payload: `{"title": "` + strings.Repeat("a", 201) + `", "content": "body"}`},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			store := &memoryBlogStore{}
			handler := CreateBlogPostHandler(services.NewBlogService(store))

			req := httptest.NewRequest(http.MethodPost, "/api/blog-posts/", strings.NewReader(testCase.payload))
			req.Header.Set("Content-Type", "application/json")
			recorder := performRequest(handler, req)

			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			body := decodeBody(t, recorder)
			assert.Equal(t, "invalid data", body["error"])
			assert.Empty(t, store.posts)
		})
	}
}

func TestListBlogPostsHandler(t *testing.T) {
	store := &memoryBlogStore{posts: []models.BlogPost{
		{Title: "Newest", Content: "a"},
		{Title: "Oldest", Content: "b"},
	}}
	handler := ListBlogPostsHandler(services.NewBlogService(store))

	req := httptest.NewRequest(http.MethodGet, "/api/blog-posts/", nil)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, true, body["success"])
	assert.Len(t, body["posts"], 2)
}

func TestHealthHandler(t *testing.T) {
	transcriptionSvc := newTranscriptionService(t, &stubTranscriber{}, &memoryStore{})
	titleSvc := services.NewTitleService(&stubSuggester{})
	handler := HealthHandler(transcriptionSvc, titleSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/health/", nil)
	recorder := performRequest(handler, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := decodeBody(t, recorder)
	assert.Equal(t, "healthy", body["status"])
	svcs, ok := body["services"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, svcs["transcription"])
	assert.Equal(t, true, svcs["title_generation"])
}
