package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/agbru/parsum/internal/config"
	"github.com/agbru/parsum/internal/logging"
	"github.com/agbru/parsum/internal/vecsum"
)

// Timeouts applied to every connection served by the API.
const (
	readTimeout     = 10 * time.Second
	writeTimeout    = 30 * time.Second
	idleTimeout     = 60 * time.Second
	shutdownTimeout = 10 * time.Second

	// maxBodyBytes bounds the request body accepted by the summation
	// endpoint.
	maxBodyBytes = 256 << 20
)

// Server hosts the array summation JSON API.
type Server struct {
	addr     string
	summer   vecsum.Summer
	metrics  *Metrics
	security SecurityConfig
	logger   logging.Logger

	httpServer *http.Server
}

// New builds a Server listening on addr with the default security
// configuration.
//
// Parameters:
//   - addr: The listen address, e.g. ":8080".
//   - logger: The structured logger used for request and lifecycle events.
//
// Returns:
//   - *Server: The configured server, not yet started.
func New(addr string, logger logging.Logger) *Server {
	return &Server{
		addr:     addr,
		summer:   vecsum.ChunkedSummer{},
		metrics:  NewMetrics(),
		security: DefaultSecurityConfig(),
		logger:   logger,
	}
}

// sumRequest is the JSON body of POST /api/v1/sum.
type sumRequest struct {
	A         []int `json:"a"`
	B         []int `json:"b"`
	ChunkSize int   `json:"chunk_size,omitempty"`
	Workers   int   `json:"workers,omitempty"`
}

// sumResponse is the JSON body returned on success.
type sumResponse struct {
	C        []int  `json:"c"`
	Items    int    `json:"items"`
	Duration string `json:"duration"`
}

// errorResponse is the JSON body returned on any failure.
type errorResponse struct {
	Error string `json:"error"`
}

// routes wires the endpoints with their middleware chain.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/sum", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleSum)))
	mux.HandleFunc("/healthz", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleHealth)))
	mux.HandleFunc("/metrics", s.metricsMiddleware(SecurityMiddleware(s.security, s.handleMetrics)))
	return mux
}

// Run starts the HTTP server and blocks until ctx is canceled or the
// listener fails. Shutdown is graceful within shutdownTimeout.
//
// Returns:
//   - error: nil after a clean shutdown, otherwise the listener or
//     shutdown failure.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.addr,
		Handler:      s.routes(),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("HTTP server listening", logging.String("addr", s.addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("HTTP server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}

// metricsMiddleware tracks the active request gauge and the per-endpoint
// request counter around next.
func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)

		s.metrics.CountRequest(r.URL.Path, fmt.Sprintf("%d", recorder.status))
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// handleSum computes a + b for the arrays in the request body.
func (s *Server) handleSum(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed, use POST")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req sumRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}

	if len(req.A) != len(req.B) {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("array lengths differ: len(a)=%d len(b)=%d", len(req.A), len(req.B)))
		return
	}
	n := len(req.A)
	if n > s.security.MaxItems {
		s.writeError(w, http.StatusBadRequest,
			fmt.Sprintf("too many items: %d exceeds limit of %d", n, s.security.MaxItems))
		return
	}

	opts := vecsum.Options{ChunkSize: req.ChunkSize, Workers: req.Workers}
	if opts.ChunkSize == 0 {
		opts.ChunkSize = config.DefaultChunkSize
	}
	if opts.Workers == 0 {
		opts.Workers = config.DefaultThreads
	}

	start := time.Now()
	c, err := s.summer.Sum(r.Context(), req.A, req.B, n, opts, nil)
	elapsed := time.Since(start)
	if err != nil {
		s.logger.Error("summation failed", err, logging.Int("items", n))
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.metrics.ObserveSum(elapsed.Seconds(), n)
	s.logger.Info("summation served",
		logging.Int("items", n),
		logging.String("duration", elapsed.String()))

	s.writeJSON(w, http.StatusOK, sumResponse{
		C:        c,
		Items:    n,
		Duration: elapsed.String(),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleMetrics serves the Prometheus scrape endpoint.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, http.StatusMethodNotAllowed, "method not allowed, use GET")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", err)
	}
}

// writeError encodes a JSON error body with the given status.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Error: msg})
}
