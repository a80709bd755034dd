// Package titles suggests blog post titles for a piece of content through the
// Groq chat-completions API.
package titles

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"blogsmith/config"
	"blogsmith/internal/httpclient"
	"blogsmith/sanitize"
)

// MinContentChars is the minimum cleaned-content length worth sending to the
// model; anything shorter fails fast without a remote call.
const MinContentChars = 30

const (
	maxSuggestions = 3
	maxTokens      = 150
	temperature    = 0.7

	systemPrompt = "You are an expert copywriter specializing in crafting compelling blog post titles."
	methodGroq   = "groq_api"
)

// Result is the outcome of one suggestion attempt. Error is set iff Success
// is false. Suggestions holds up to 3 unique titles in model order.
type Result struct {
	Success              bool     `json:"success"`
	Suggestions          []string `json:"suggestions"`
	ContentLength        int      `json:"content_length,omitempty"`
	CleanedContentLength int      `json:"cleaned_content_length,omitempty"`
	MethodUsed           string   `json:"method_used,omitempty"`
	Error                string   `json:"error,omitempty"`
}

// Client calls the Groq chat-completions endpoint. A client without an API key
// is valid but unconfigured: Suggest fails fast and Configured reports false.
type Client struct {
	base   *httpclient.BaseClient
	apiKey string
	model  string
}

// New builds a Client from the Groq settings. apiKey may be empty.
func New(apiKey string, cfg config.GroqConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	model := cfg.Model
	if model == "" {
		model = "meta-llama/llama-4-scout-17b-16e-instruct"
	}
	return &Client{
		base:   httpclient.NewBaseClient(baseURL),
		apiKey: apiKey,
		model:  model,
	}
}

// Configured reports whether a credential is present. It never makes a
// remote call.
func (c *Client) Configured() bool {
	return c != nil && c.apiKey != ""
}

// Suggest cleans the content, prompts the model for exactly three titles, and
// post-processes the response into at most three unique suggestions. Every
// failure is reported through the Result, never as an error value.
func (c *Client) Suggest(ctx context.Context, content string) Result {
	cleaned := sanitize.CleanHTML(content)

	if len(strings.TrimSpace(cleaned)) < MinContentChars {
		return failure(fmt.Sprintf(
			"content too short for meaningful title generation, minimum %d characters required", MinContentChars))
	}

	if !c.Configured() {
		return failure("Groq API client not configured, set GROQ_API_KEY")
	}

	raw, err := c.complete(ctx, buildPrompt(cleaned))
	if err != nil {
		return failure(fmt.Sprintf("Groq API call failed: %v", err))
	}

	return Result{
		Success:              true,
		Suggestions:          FilterTitles(raw),
		ContentLength:        len(content),
		CleanedContentLength: len(cleaned),
		MethodUsed:           methodGroq,
	}
}

func failure(msg string) Result {
	return Result{Success: false, Error: msg, Suggestions: []string{}}
}

func buildPrompt(content string) string {
	return fmt.Sprintf(`Generate exactly 3 distinct, engaging, and SEO-friendly blog post titles based on the following content.
Each title should be between 40-70 characters.
Return only the titles, one title per line. Do not use numbering, bullet points, or quotation marks around the titles.

Content:
"""
%s
"""

Titles:`, content)
}

// FilterTitles turns the raw multi-line model response into the final
// suggestion list: trimmed lines with length strictly between 5 and 100,
// deduplicated in first-seen order, single-word candidates dropped, capped at
// three entries.
func FilterTitles(raw string) []string {
	suggestions := []string{}
	seen := map[string]struct{}{}

	for _, line := range strings.Split(raw, "\n") {
		title := strings.TrimSpace(line)
		if len(title) <= 5 || len(title) >= 100 {
			continue
		}
		if _, dup := seen[title]; dup {
			continue
		}
		if len(strings.Fields(title)) < 2 {
			continue
		}
		seen[title] = struct{}{}
		suggestions = append(suggestions, title)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	N           int           `json:"n"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// complete performs one chat-completions round trip and returns the raw
// content of the first choice.
func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   maxTokens,
		Temperature: temperature,
		N:           1,
	}
	buf, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := c.base.NewRequest(ctx, http.MethodPost, "/chat/completions", nil, bytes.NewReader(buf))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.base.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("groq: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("groq: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("groq: response contained no choices")
	}
	return strings.TrimSpace(decoded.Choices[0].Message.Content), nil
}
