// Package api serves the ingested dataset as a read-only JSON API.
package api

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/ledgerlens/ledgerlens/internal/ingest"
)

const shutdownTimeout = 10 * time.Second

// Options configures the server.
type Options struct {
	AllowedOrigins []string
}

// Server answers queries against one Dataset. The Dataset is never mutated,
// so handlers share it without locking.
type Server struct {
	data    *ingest.Dataset
	log     zerolog.Logger
	origins []string
}

// NewServer creates a server over data.
func NewServer(data *ingest.Dataset, log zerolog.Logger, opts Options) *Server {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return &Server{data: data, log: log, origins: origins}
}

// Handler returns the routed handler with the full middleware stack.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.health)
	mux.HandleFunc("GET /api/transactions", s.transactions)
	mux.HandleFunc("GET /api/charts/categories", s.categoryChart)
	mux.HandleFunc("GET /api/charts/spending", s.spendingChart)
	mux.HandleFunc("GET /api/charts/monthly", s.monthlyChart)
	mux.HandleFunc("GET /api/options", s.options)
	mux.HandleFunc("GET /api/bank/net", s.bankNet)
	mux.HandleFunc("GET /api/bank/balance", s.bankBalance)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         3600,
	})

	return Chain(mux, RequestID(s.log), Logger, Recovery, c.Handler)
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
// HTTP/2 without TLS is accepted alongside HTTP/1.1.
func (s *Server) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.serve(ctx, ln)
}

func (s *Server) serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           h2c.NewHandler(s.Handler(), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", ln.Addr().String()).Msg("server listening")
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
