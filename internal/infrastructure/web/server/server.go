package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// Server encapsulates HTTP server configuration
type Server struct {
	httpServer *http.Server
	port       int
}

// NewServer creates a new server instance. writeTimeout must exceed the slowest
// upstream timeout so a dashboard composition can finish.
func NewServer(handler http.Handler, port int, readTimeout, writeTimeout time.Duration) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           handler,
			ReadTimeout:       readTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      writeTimeout,
			IdleTimeout:       60 * time.Second,
		},
		port: port,
	}
}

// Start serves until Stop is called. A graceful stop is not reported as an error.
func (s *Server) Start() error {
	ctx := context.Background()

	logging.Info(ctx, "HTTP server starting", logging.Fields{
		"port": s.port,
	})

	logging.Info(ctx, "Available endpoints", logging.Fields{
		"endpoints": []string{
			fmt.Sprintf("GET  http://localhost:%d/health", s.port),
			fmt.Sprintf("GET  http://localhost:%d/api/market/dashboard", s.port),
			fmt.Sprintf("GET  http://localhost:%d/api/market/prices?coin_ids=bitcoin,ethereum", s.port),
			fmt.Sprintf("GET  http://localhost:%d/api/market/funding?symbols=BTCUSDT", s.port),
			fmt.Sprintf("POST http://localhost:%d/api/alerts", s.port),
			fmt.Sprintf("GET  http://localhost:%d/swagger/index.html", s.port),
		},
	})

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop stops the HTTP server gracefully
func (s *Server) Stop(ctx context.Context) error {
	logging.Info(ctx, "Stopping HTTP server gracefully", logging.Fields{
		"port": s.port,
	})

	return s.httpServer.Shutdown(ctx)
}

// GetPort returns the configured port
func (s *Server) GetPort() int {
	return s.port
}
