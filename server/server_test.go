package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linkedin_post_generator/generator"
	"linkedin_post_generator/pillar"
	"linkedin_post_generator/trends"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fixedScheduler struct{ p pillar.Pillar }

func (f fixedScheduler) ActivePillar() (pillar.Pillar, error) { return f.p, nil }

type stubFetcher struct {
	news  *trends.Result
	err   error
	calls int
}

func (s *stubFetcher) Fetch(_ context.Context) (*trends.Result, *trends.Result, error) {
	s.calls++
	return s.news, nil, s.err
}

// flakyLLM fails until the given attempt.
type flakyLLM struct {
	failuresLeft int
	inner        generator.LLMClient
}

func (f *flakyLLM) Complete(ctx context.Context, prompt generator.Prompt) (string, error) {
	if f.failuresLeft > 0 {
		f.failuresLeft--
		return "", errors.New("backend unavailable")
	}
	return f.inner.Complete(ctx, prompt)
}

func newTestServer(t *testing.T, sched Scheduler, llm generator.LLMClient, fetcher generator.TrendFetcher) *httptest.Server {
	t.Helper()
	agent, err := generator.NewAgent(llm)
	require.NoError(t, err)
	srv, err := New(sched, agent, fetcher, testLogger())
	require.NoError(t, err)
	ts := httptest.NewServer(srv.Routes())
	t.Cleanup(ts.Close)
	return ts
}

func createSession(t *testing.T, ts *httptest.Server) sessionResp {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/sessions", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out sessionResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func trendPillar() pillar.Pillar {
	for _, p := range pillar.Catalog() {
		if p.Name == pillar.TrendPillarName {
			return p
		}
	}
	panic("trend pillar missing")
}

func TestSessionCreateReturnsPillarAndSources(t *testing.T) {
	fetcher := &stubFetcher{news: &trends.Result{Title: "Big news", URL: "https://n"}}
	ts := newTestServer(t, fixedScheduler{trendPillar()}, generator.MockLLM{}, fetcher)

	sess := createSession(t, ts)
	assert.NotEmpty(t, sess.SessionID)
	assert.Equal(t, pillar.TrendPillarName, sess.Pillar.Name)
	require.NotNil(t, sess.Sources.News)
	assert.Equal(t, "Big news", sess.Sources.News.Title)
	assert.Nil(t, sess.Result)
	assert.Equal(t, 1, fetcher.calls)
}

func TestSessionCreateSkipsTrendsForOtherPillars(t *testing.T) {
	fetcher := &stubFetcher{}
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, generator.MockLLM{}, fetcher)

	sess := createSession(t, ts)
	assert.Zero(t, fetcher.calls)
	assert.Nil(t, sess.Sources.News)
	assert.Empty(t, sess.Warning)
}

func TestGenerateProducesResult(t *testing.T) {
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, generator.MockLLM{}, nil)
	sess := createSession(t, ts)

	resp, err := http.Post(ts.URL+"/api/sessions/"+sess.SessionID+"/generate", "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out sessionResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.NotNil(t, out.Result)
	assert.NotEmpty(t, out.Result.LinkedInPost)
	assert.Len(t, out.Result.CarouselScript, generator.CarouselLen)
}

func TestGenerateFailureIsNonFatalAndRetryable(t *testing.T) {
	llm := &flakyLLM{failuresLeft: 1, inner: generator.MockLLM{}}
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, llm, nil)
	sess := createSession(t, ts)

	url := ts.URL + "/api/sessions/" + sess.SessionID + "/generate"

	resp, err := http.Post(url, "application/json", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

	// Session survived; the retry succeeds.
	resp, err = http.Post(url, "application/json", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out sessionResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotNil(t, out.Result)
}

func TestGetSessionReflectsState(t *testing.T) {
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, generator.MockLLM{}, nil)
	sess := createSession(t, ts)

	resp, err := http.Get(ts.URL + "/api/sessions/" + sess.SessionID)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out sessionResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, sess.SessionID, out.SessionID)
	assert.Nil(t, out.Result)
}

func TestUnknownSessionIs404(t *testing.T) {
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, generator.MockLLM{}, nil)

	resp, err := http.Get(ts.URL + "/api/sessions/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPreviewRendersHTML(t *testing.T) {
	ts := newTestServer(t, fixedScheduler{pillar.Catalog()[0]}, generator.MockLLM{}, nil)
	sess := createSession(t, ts)

	// Before generation there is nothing to preview.
	resp, err := http.Get(ts.URL + "/api/sessions/" + sess.SessionID + "/preview")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	post, err := http.Post(ts.URL+"/api/sessions/"+sess.SessionID+"/generate", "application/json", nil)
	require.NoError(t, err)
	post.Body.Close()
	require.Equal(t, http.StatusOK, post.StatusCode)

	resp, err = http.Get(ts.URL + "/api/sessions/" + sess.SessionID + "/preview")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
