package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/logger"
)

// GracefulServer runs echo and drains registered components on shutdown
type GracefulServer struct {
	echo            *echo.Echo
	port            int
	shutdownTimeout time.Duration
	components      []namedCloser
}

type namedCloser struct {
	name string
	fn   func(context.Context) error
}

// NewGracefulServer creates a server; a zero timeout means 30s
func NewGracefulServer(e *echo.Echo, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 30 * time.Second
	}
	return &GracefulServer{
		echo:            e,
		port:            port,
		shutdownTimeout: shutdownTimeout,
	}
}

// Register adds a cleanup function run after the HTTP server stops, in
// registration order.
func (s *GracefulServer) Register(name string, fn func(context.Context) error) {
	s.components = append(s.components, namedCloser{name: name, fn: fn})
}

// Start serves until SIGINT/SIGTERM and then shuts down gracefully
func (s *GracefulServer) Start() error {
	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", s.port)
		logger.Info("Starting HTTP server", logger.String("address", addr))
		if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case sig := <-quit:
		logger.Info("Received shutdown signal", logger.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("HTTP server failed", logger.Err(err))
		s.Shutdown()
		return err
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server, then every registered component
func (s *GracefulServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	logger.Info("Shutting down server gracefully...")
	err := s.echo.Shutdown(ctx)
	if err != nil {
		logger.Error("Server forced to shutdown", logger.Err(err))
	}

	for _, c := range s.components {
		if cerr := c.fn(ctx); cerr != nil {
			logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(cerr))
		}
	}

	logger.Info("Server shutdown completed")
	return err
}
