// Package server exposes the descriptor codec over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dhamidi/wls/ejbjar"
	"github.com/google/uuid"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("wls.server")

const (
	DefaultMaxBodyBytes = 4 << 20

	requestIDHeader = "X-Request-Id"
	shutdownTimeout = 10 * time.Second
)

type Options struct {
	// Namespace every decoded element is moved into.
	Namespace string
	// MaxBodyBytes bounds request bodies; larger ones get 413.
	MaxBodyBytes int64
	// Validate turns on schema validation for /v1/parse. /v1/validate
	// always validates.
	Validate bool
}

type Server struct {
	opts      Options
	validator *ejbjar.Validator
	mux       *http.ServeMux
}

func NewServer(opts Options) *Server {
	if opts.Namespace == "" {
		opts.Namespace = ejbjar.Namespace
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{
		opts:      opts,
		validator: ejbjar.NewValidator(),
		mux:       http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /v1/parse", s.handleParse)
	s.mux.HandleFunc("POST /v1/normalize", s.handleNormalize)
	s.mux.HandleFunc("POST /v1/validate", s.handleValidate)
	s.mux.HandleFunc("POST /v1/check", s.handleCheck)
	s.mux.HandleFunc("GET /v1/elements", s.handleElements)
	s.mux.HandleFunc("GET /v1/elements/{name}", s.handleElement)
	s.mux.HandleFunc("GET /v1/schemas/{root}", s.handleSchema)
	s.mux.HandleFunc("GET /healthz", s.handleHealth)

	return s
}

// ServeHTTP tags every response with a request id, echoing the caller's
// when one is sent, and logs the request.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(requestIDHeader, id)

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	start := time.Now()
	s.mux.ServeHTTP(rec, r)
	log.Infof("%s %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start))
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
