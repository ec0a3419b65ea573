// Package server exposes a live gradient preview over HTTP. It holds a
// single working config in memory and re-renders artifacts on every
// request, so a browser pointed at the server always shows the current
// state.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gradgen/gradgen/pkg/errors"
	"github.com/gradgen/gradgen/pkg/gradient"
	"github.com/gradgen/gradgen/pkg/preset"
	"github.com/gradgen/gradgen/pkg/render"
)

// Server serves rendered gradient artifacts and a small JSON API for
// editing the working config. All state mutations go through the mutex,
// so the working config is always a validated, sorted snapshot.
type Server struct {
	mu     sync.RWMutex
	cfg    gradient.Config
	store  preset.Store
	logger *log.Logger
}

// New creates a preview server starting from cfg. The preset store may
// be nil, which disables the /api/presets endpoints.
func New(cfg gradient.Config, store preset.Store, logger *log.Logger) (*Server, error) {
	normalized, err := cfg.Normalize()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Server{cfg: normalized, store: store, logger: logger}, nil
}

// Config returns a snapshot of the current working config.
func (s *Server) Config() gradient.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg.Clone()
}

// Handler builds the chi router for the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/gradient.css", s.handleCSS)
	r.Get("/gradient.svg", s.handleSVG)
	r.Get("/gradient.html", s.handleHTML)

	r.Route("/api", func(r chi.Router) {
		r.Get("/config", s.handleGetConfig)
		r.Put("/config", s.handlePutConfig)
		r.Post("/stops", s.handleAddStop)
		r.Patch("/stops/{id}", s.handleUpdateStop)
		r.Delete("/stops/{id}", s.handleRemoveStop)
		if s.store != nil {
			r.Get("/presets", s.handleListPresets)
			r.Get("/presets/{name}", s.handleGetPreset)
			r.Put("/presets/{name}", s.handleSavePreset)
			r.Delete("/presets/{name}", s.handleDeletePreset)
		}
	})

	return r
}

// ListenAndServe runs the server at addr until ctx is canceled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("preview server listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return ctx.Err()
	}
}

// ============================================================================
// Artifact handlers
// ============================================================================

// handleIndex serves the preview page: the rendered gradient followed by
// the artifact text. The artifact strings are HTML-escaped before being
// embedded, so the page never echoes raw generated markup as markup.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	snippet := render.HTML(cfg)

	var buf bytes.Buffer
	buf.WriteString("<!doctype html>\n<html>\n<head>\n  <title>gradgen preview</title>\n")
	buf.WriteString("  <style>\n")
	buf.WriteString("    body { margin: 0; font-family: monospace; }\n")
	buf.WriteString("    .gradient-background { height: 60vh !important; }\n")
	buf.WriteString("    .artifacts { padding: 1rem; }\n")
	buf.WriteString("    pre { background: #f4f4f4; padding: 1rem; overflow-x: auto; }\n")
	buf.WriteString("  </style>\n</head>\n<body>\n")
	buf.Write(snippet)
	buf.WriteString(`<div class="artifacts">` + "\n")
	fmt.Fprintf(&buf, "<h2>css</h2>\n<pre>%s</pre>\n", html.EscapeString(render.CSS(cfg)))
	fmt.Fprintf(&buf, "<h2>html</h2>\n<pre>%s</pre>\n", html.EscapeString(string(snippet)))
	buf.WriteString(`<p><a href="/gradient.css">gradient.css</a> · <a href="/gradient.svg">gradient.svg</a> · <a href="/gradient.html">gradient.html</a></p>` + "\n")
	buf.WriteString("</div>\n</body>\n</html>\n")

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	fmt.Fprintf(w, ".gradient-background {\n  background: %s;\n}\n", render.CSS(cfg))
}

func (s *Server) handleSVG(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(render.SVG(cfg))
}

func (s *Server) handleHTML(w http.ResponseWriter, r *http.Request) {
	cfg := s.Config()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(render.HTML(cfg))
}

// ============================================================================
// Config API
// ============================================================================

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.Config())
}

func (s *Server) handlePutConfig(w http.ResponseWriter, r *http.Request) {
	var cfg gradient.Config
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config"))
		return
	}
	normalized, err := cfg.Normalize()
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.mu.Lock()
	s.cfg = normalized
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, normalized)
}

func (s *Server) handleAddStop(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	cfg, added := s.cfg.AddStop()
	s.cfg = cfg
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, added)
}

type stopPatch struct {
	Color  *string `json:"color"`
	Offset *int    `json:"offset"`
}

func (s *Server) handleUpdateStop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var patch stopPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode stop patch"))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.cfg.StopByID(id)
	if !ok {
		s.writeError(w, errors.New(errors.ErrCodeStopNotFound, "no stop with id %q", id))
		return
	}
	color, offset := current.Color, current.Offset
	if patch.Color != nil {
		color = *patch.Color
	}
	if patch.Offset != nil {
		offset = *patch.Offset
	}

	cfg, err := s.cfg.UpdateStop(id, color, offset)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.cfg = cfg
	writeJSON(w, http.StatusOK, cfg)
}

func (s *Server) handleRemoveStop(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.cfg.StopByID(id); !ok {
		s.writeError(w, errors.New(errors.ErrCodeStopNotFound, "no stop with id %q", id))
		return
	}
	cfg, removed := s.cfg.RemoveStop(id)
	if !removed {
		s.writeError(w, errors.New(errors.ErrCodeMinStops, "gradient needs at least %d stops", gradient.MinStops))
		return
	}
	s.cfg = cfg
	writeJSON(w, http.StatusOK, cfg)
}

// ============================================================================
// Preset API
// ============================================================================

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	list, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	p, err := s.store.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleSavePreset snapshots the current working config under the given name.
func (s *Server) handleSavePreset(w http.ResponseWriter, r *http.Request) {
	p, err := preset.New(chi.URLParam(r, "name"), s.Config())
	if err != nil {
		s.writeError(w, err)
		return
	}
	if err := s.store.Save(r.Context(), p); err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ============================================================================
// Responses
// ============================================================================

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusBadRequest
	switch code {
	case errors.ErrCodeNotFound, errors.ErrCodeStopNotFound,
		errors.ErrCodePresetNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeStoreUnavailable:
		status = http.StatusServiceUnavailable
	case errors.ErrCodeInternal:
		status = http.StatusInternalServerError
	}
	if status >= 500 {
		s.logger.Error("request failed", "code", code, "err", err)
	}
	writeJSON(w, status, errorResponse{Code: string(code), Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
