package generator

import (
	"context"
	"log/slog"

	"linkedin_post_generator/pillar"
	"linkedin_post_generator/trends"
)

// TrendFetcher is what the session needs from the trends package.
type TrendFetcher interface {
	Fetch(ctx context.Context) (*trends.Result, *trends.Result, error)
}

// Session holds the in-memory state of one interactive run: today's pillar,
// the once-per-run trend cache, and the last successful result. Nothing here
// is persisted; a restart starts fresh.
type Session struct {
	ID     string
	Pillar pillar.Pillar

	News     *trends.Result
	LinkedIn *trends.Result
	Context  string
	Warning  string

	Result *Result

	agent         *Agent
	fetcher       TrendFetcher
	trendsFetched bool
	logger        *slog.Logger
}

// NewSession creates a session for today's pillar. Trends are not fetched yet.
func NewSession(id string, p pillar.Pillar, agent *Agent, fetcher TrendFetcher, logger *slog.Logger) *Session {
	return &Session{
		ID:      id,
		Pillar:  p,
		Context: trends.FallbackContext,
		agent:   agent,
		fetcher: fetcher,
		logger:  logger.With("component", "session", "session_id", id),
	}
}

// LoadTrends fetches trend context at most once per session, and only when the
// active pillar wants it. A fetch failure degrades to the fallback context and
// records a warning for the UI; it never blocks generation.
func (s *Session) LoadTrends(ctx context.Context) {
	if s.trendsFetched || s.Pillar.Name != pillar.TrendPillarName || s.fetcher == nil {
		return
	}
	s.trendsFetched = true

	news, linkedin, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.Warning = "Could not fetch trends. Using general knowledge."
		s.logger.Warn("trend fetch failed", "error", err)
		return
	}

	s.News = news
	s.LinkedIn = linkedin
	s.Context = trends.BuildContext(news, linkedin)
	if s.News == nil && s.LinkedIn == nil {
		s.Warning = "Could not fetch trends. Using general knowledge."
	}
}

// Generate runs one generation with the session's pillar and cached context.
// On success the previous result is overwritten; on failure it is kept and the
// error is surfaced so the caller can retry.
func (s *Session) Generate(ctx context.Context) (Result, error) {
	res, err := s.agent.Generate(ctx, s.Pillar, s.Context)
	if err != nil {
		s.logger.Warn("generation failed", "error", err)
		return Result{}, err
	}
	s.Result = &res
	s.logger.Info("generated post", "headline", res.Headline, "slides", len(res.CarouselScript))
	return res, nil
}
