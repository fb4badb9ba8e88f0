package trends

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

const (
	newsQuery     = "latest AI news today 2026"
	linkedinQuery = "site:linkedin.com AI engineering articles"

	// FallbackContext is what the generator gets when no trend data could be
	// fetched.
	FallbackContext = "Pick a relevant topic from my Projects list or general AI engineering expertise."
)

// Searcher is the single call the fetcher needs from the search backend.
type Searcher interface {
	Search(ctx context.Context, query string) (*Result, error)
}

// Fetcher runs the two fixed queries, sequentially, and hands back the top hit
// of each. Failures are the caller's cue to fall back, not to abort.
type Fetcher struct {
	client Searcher
	logger *slog.Logger
}

func NewFetcher(client Searcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		client: client,
		logger: logger.With("component", "trends"),
	}
}

// Fetch returns (news, linkedin). Either may be nil when its query comes back
// empty. A backend failure on either query returns an error; the caller is
// expected to degrade to FallbackContext rather than block generation.
func (f *Fetcher) Fetch(ctx context.Context) (*Result, *Result, error) {
	news, err := f.client.Search(ctx, newsQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("search ai news: %w", err)
	}

	linkedin, err := f.client.Search(ctx, linkedinQuery)
	if err != nil {
		return nil, nil, fmt.Errorf("search linkedin: %w", err)
	}

	f.logger.Info("fetched trends", "news", news != nil, "linkedin", linkedin != nil)
	return news, linkedin, nil
}

// BuildContext turns the fetched hits into the context block embedded in the
// generation prompt, or the generic fallback when both are absent.
func BuildContext(news, linkedin *Result) string {
	var sb strings.Builder
	if news != nil {
		fmt.Fprintf(&sb, "Global News: %s (%s)\n", news.Title, news.Content)
	}
	if linkedin != nil {
		fmt.Fprintf(&sb, "LinkedIn Discussion: %s (%s)\n", linkedin.Title, linkedin.Content)
	}
	if sb.Len() == 0 {
		return FallbackContext
	}
	return sb.String()
}
