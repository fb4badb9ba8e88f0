package server

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/yuin/goldmark"

	"linkedin_post_generator/generator"
	"linkedin_post_generator/pillar"
	"linkedin_post_generator/trends"
)

//go:embed web/dist
var embeddedStatic embed.FS

// Scheduler decides today's pillar.
type Scheduler interface {
	ActivePillar() (pillar.Pillar, error)
}

type Server struct {
	scheduler Scheduler
	agent     *generator.Agent
	fetcher   generator.TrendFetcher
	store     *sessionStore
	staticFS  http.Handler
	logger    *slog.Logger
}

type sessionStore struct {
	mu       sync.Mutex
	sessions map[string]*generator.Session
}

func newStore() *sessionStore {
	return &sessionStore{sessions: make(map[string]*generator.Session)}
}

func (s *sessionStore) set(id string, sess *generator.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[id] = sess
}

func (s *sessionStore) get(id string) (*generator.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

func New(scheduler Scheduler, agent *generator.Agent, fetcher generator.TrendFetcher, logger *slog.Logger) (*Server, error) {
	if scheduler == nil {
		return nil, errors.New("scheduler required")
	}
	if agent == nil {
		return nil, errors.New("generator agent required")
	}

	sub, err := fs.Sub(embeddedStatic, "web/dist")
	if err != nil {
		return nil, err
	}

	return &Server{
		scheduler: scheduler,
		agent:     agent,
		fetcher:   fetcher,
		store:     newStore(),
		staticFS:  http.FileServer(http.FS(sub)),
		logger:    logger.With("component", "server"),
	}, nil
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/sessions", s.handleSessionCreate)
	mux.HandleFunc("/api/sessions/", s.handleSessionByID)
	mux.Handle("/", s.staticHandler())
	return s.logMiddleware(mux)
}

func (s *Server) staticHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// fall back to index.html for SPA-ish behavior
		upath := r.URL.Path
		if upath == "/" || !strings.HasPrefix(upath, "/api/") {
			p := upath
			if p == "/" {
				p = "/index.html"
			}
			r.URL.Path = p
			s.staticFS.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	})
}

// --- Handlers ---

type sourcesResp struct {
	News     *trends.Result `json:"news,omitempty"`
	LinkedIn *trends.Result `json:"linkedin,omitempty"`
}

type sessionResp struct {
	SessionID string            `json:"session_id"`
	Pillar    pillar.Pillar     `json:"pillar"`
	Sources   sourcesResp       `json:"sources"`
	Warning   string            `json:"warning,omitempty"`
	Result    *generator.Result `json:"result,omitempty"`
}

func sessionView(id string, sess *generator.Session) sessionResp {
	return sessionResp{
		SessionID: id,
		Pillar:    sess.Pillar,
		Sources:   sourcesResp{News: sess.News, LinkedIn: sess.LinkedIn},
		Warning:   sess.Warning,
		Result:    sess.Result,
	}
}

func (s *Server) handleSessionCreate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	p, err := s.scheduler.ActivePillar()
	if err != nil {
		// The pillar itself is still valid; only persisting failed.
		s.logger.Warn("rotation state not persisted", "error", err)
	}

	id := newSessionID()
	sess := generator.NewSession(id, p, s.agent, s.fetcher, s.logger)

	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()
	sess.LoadTrends(ctx)

	s.store.set(id, sess)
	writeJSON(w, sessionView(id, sess))
}

func (s *Server) handleSessionByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/sessions/")
	id, action, _ := strings.Cut(rest, "/")
	if id == "" {
		http.NotFound(w, r)
		return
	}
	sess, ok := s.store.get(id)
	if !ok {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	switch {
	case action == "" && r.Method == http.MethodGet:
		writeJSON(w, sessionView(id, sess))
	case action == "generate" && r.Method == http.MethodPost:
		s.handleGenerate(w, r, id, sess)
	case action == "preview" && r.Method == http.MethodGet:
		s.handlePreview(w, sess)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request, id string, sess *generator.Session) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if _, err := sess.Generate(ctx); err != nil {
		// Non-fatal: the session and any prior result stay usable.
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	writeJSON(w, sessionView(id, sess))
}

// handlePreview renders the generated post text as HTML for the preview pane.
func (s *Server) handlePreview(w http.ResponseWriter, sess *generator.Session) {
	if sess.Result == nil {
		http.Error(w, "nothing generated yet", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(sess.Result.LinkedInPost), &buf); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// --- Helpers ---

func newSessionID() string {
	return strings.ReplaceAll(time.Now().Format("20060102T150405.000000000"), ".", "")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
