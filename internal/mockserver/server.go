// Package mockserver is a local stand-in for the reply-generation service.
// It speaks the same wire contract and can inject latency and failures, so
// the client can be exercised without the hosted endpoint.
package mockserver

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// GeneratePath is the route the real service exposes.
const GeneratePath = "/api/email/generate"

// Config controls the mock server.
type Config struct {
	Addr     string        // listen address, e.g. ":8080"
	Latency  time.Duration // base simulated latency, jittered 80-120%
	FailRate float64       // probability 0.0-1.0 of answering 500
	JSON     bool          // reply with a JSON object instead of plain text
}

// Server serves the mock generation API.
type Server struct {
	cfg    Config
	router *chi.Mux
	log    *slog.Logger

	served atomic.Int64
	failed atomic.Int64
}

// New creates a server. A nil logger falls back to slog.Default.
func New(cfg Config, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	s := &Server{cfg: cfg, router: chi.NewRouter(), log: log}

	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(s.requestLog)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Group(func(r chi.Router) {
		r.Use(s.latencyInjection)
		r.Use(s.randomFailure)
		r.Post(GeneratePath, s.handleGenerate)
	})
	return s
}

// ServeHTTP implements http.Handler so the server can be used directly in tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Served returns how many generate requests got a reply.
func (s *Server) Served() int64 { return s.served.Load() }

// Failed returns how many generate requests got an injected failure.
func (s *Server) Failed() int64 { return s.failed.Load() }

// ListenAndServe listens on cfg.Addr and serves until ctx is cancelled, then
// shuts down gracefully. ready, if non-nil, receives the bound address.
func (s *Server) ListenAndServe(ctx context.Context, ready func(net.Addr)) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30*time.Second + s.cfg.Latency*2,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("mock generation service listening", "addr", ln.Addr().String(), "latency", s.cfg.Latency, "failRate", s.cfg.FailRate, "json", s.cfg.JSON)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	if ready != nil {
		ready(ln.Addr())
	}

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down mock generation service")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

type generateRequest struct {
	EmailContent string `json:"emailContent"`
	Tone         string `json:"tone"`
}

type generateReply struct {
	Reply string `json:"reply"`
	Tone  string `json:"tone"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with emailContent and tone")
		return
	}
	if strings.TrimSpace(req.EmailContent) == "" {
		writeError(w, http.StatusBadRequest, "emailContent must not be blank")
		return
	}

	reply := ComposeReply(req.EmailContent, req.Tone)
	s.served.Add(1)

	if s.cfg.JSON {
		writeJSON(w, http.StatusOK, generateReply{Reply: reply, Tone: req.Tone})
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(reply))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"served": s.served.Load(),
		"failed": s.failed.Load(),
	})
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.statusCode = code
	sr.ResponseWriter.WriteHeader(code)
}

func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.statusCode,
			"duration", time.Since(start),
			"requestID", chimw.GetReqID(r.Context()),
			"remote", r.RemoteAddr,
		)
	})
}

func (s *Server) latencyInjection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.Latency > 0 {
			jitter := 0.8 + rand.Float64()*0.4
			delay := time.Duration(float64(s.cfg.Latency) * jitter)
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) randomFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.cfg.FailRate > 0 && rand.Float64() < s.cfg.FailRate {
			s.failed.Add(1)
			writeError(w, http.StatusInternalServerError, "simulated random failure")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]any{
		"error": map[string]any{
			"message": message,
			"type":    http.StatusText(status),
			"code":    status,
		},
	})
}
