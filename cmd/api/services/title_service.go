package services

import (
	"context"

	"blogsmith/titles"
)

// TitleSuggester is the remote title-generation client.
type TitleSuggester interface {
	Suggest(ctx context.Context, content string) titles.Result
	Configured() bool
}

// TitleService wraps the suggestion client. Nothing is persisted for title
// suggestions.
type TitleService struct {
	client TitleSuggester
}

func NewTitleService(client TitleSuggester) *TitleService {
	return &TitleService{client: client}
}

func (s *TitleService) Suggest(ctx context.Context, content string) titles.Result {
	return s.client.Suggest(ctx, content)
}

func (s *TitleService) Configured() bool {
	return s.client.Configured()
}
