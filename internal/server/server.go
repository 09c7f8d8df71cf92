// Package server exposes the forecast dashboard as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/theirongolddev/salescast/internal/config"
	"github.com/theirongolddev/salescast/internal/dataset"
	"github.com/theirongolddev/salescast/internal/forecast"
	"github.com/theirongolddev/salescast/internal/model"
	"github.com/theirongolddev/salescast/internal/pipeline"
)

// Config controls the server runtime behavior.
type Config struct {
	Addr         string
	DefaultMonth int // used when a request has no month parameter
	Logger       *log.Logger
}

// Status is served at /v1/status.
type Status struct {
	StartedAt    time.Time `json:"started_at"`
	UptimeSec    int64     `json:"uptime_sec"`
	DefaultMonth int       `json:"default_month"`
	Slope        float64   `json:"slope"`
	Intercept    float64   `json:"intercept"`
	Observations int       `json:"observations"`
}

type errorBody struct {
	Error string `json:"error"`
}

// Service serves read-only views over an immutable forecast engine.
// Handlers share no mutable state.
type Service struct {
	cfg       Config
	engine    *forecast.Engine
	startedAt time.Time
}

// New returns a service over engine with defaults filled in.
func New(engine *forecast.Engine, cfg Config) *Service {
	if cfg.Addr == "" {
		cfg.Addr = config.DefaultAddr
	}
	if forecast.ValidatePeriod(cfg.DefaultMonth) != nil {
		cfg.DefaultMonth = dataset.DefaultMonth
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	return &Service{
		cfg:       cfg,
		engine:    engine,
		startedAt: time.Now(),
	}
}

// Handler returns the routed API, wrapped with request logging.
func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /v1/status", s.handleStatus)
	mux.HandleFunc("GET /v1/forecast", s.handleForecast)
	mux.HandleFunc("GET /v1/dashboard", s.handleDashboard)
	mux.HandleFunc("GET /v1/categories", s.handleCategories)
	mux.HandleFunc("GET /v1/categories/{slug}", s.handleCategory)
	return s.logRequests(mux)
}

// Run serves HTTP until ctx is canceled, then shuts down gracefully.
func (s *Service) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	s.cfg.Logger.Printf("salescast serve: listening on %s", s.cfg.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.cfg.Logger.Printf("salescast serve: shutting down")
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return fmt.Errorf("salescast http server: %w", err)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.cfg.Logger.Printf("salescast serve: %s %s %d %s", r.Method, r.URL.RequestURI(), rec.code, time.Since(start).Round(time.Microsecond))
	})
}

// monthParam reads ?month=, falling back to the configured default.
func (s *Service) monthParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return s.cfg.DefaultMonth, nil
	}
	m, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("month %q: %w", raw, forecast.ErrPeriodOutOfRange)
	}
	if err := forecast.ValidatePeriod(m); err != nil {
		return 0, fmt.Errorf("month %q: %w", raw, err)
	}
	return m, nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, forecast.ErrPeriodOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, pipeline.ErrUnknownCategory):
		code = http.StatusNotFound
	}
	writeJSON(w, code, errorBody{Error: err.Error()})
}

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Service) handleStatus(w http.ResponseWriter, _ *http.Request) {
	line := s.engine.Line()
	writeJSON(w, http.StatusOK, Status{
		StartedAt:    s.startedAt,
		UptimeSec:    int64(time.Since(s.startedAt).Seconds()),
		DefaultMonth: s.cfg.DefaultMonth,
		Slope:        line.Slope,
		Intercept:    line.Intercept,
		Observations: len(s.engine.Observations()),
	})
}

func (s *Service) handleForecast(w http.ResponseWriter, r *http.Request) {
	month, err := s.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	f, err := pipeline.Forecast(s.engine, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, f)
}

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	month, err := s.monthParam(r)
	if err != nil {
		writeError(w, err)
		return
	}
	d, err := pipeline.BuildDashboard(s.engine, month)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

func (s *Service) categories() []model.CategoryMetric {
	return pipeline.CategoryMetrics(dataset.Categories())
}

func (s *Service) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.categories())
}

func (s *Service) handleCategory(w http.ResponseWriter, r *http.Request) {
	c, err := pipeline.FindCategory(s.categories(), r.PathValue("slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
