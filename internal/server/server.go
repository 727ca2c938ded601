package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/muurk/deckcalc/internal/config"
	"github.com/muurk/deckcalc/internal/discovery"
	"github.com/muurk/deckcalc/internal/estimate"
	"github.com/muurk/deckcalc/internal/logging"
	"github.com/muurk/deckcalc/internal/version"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// Server is the deckcalc calculation server
type Server struct {
	config     *config.Config
	calc       *estimate.Calculator
	httpServer *http.Server
	advertiser *discovery.Advertiser
}

// New creates a server from cfg. The configuration is validated first.
func New(cfg *config.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	calc := estimate.NewCalculator(cfg.Materials, cfg.Limits)

	return &Server{
		config: cfg,
		calc:   calc,
		httpServer: &http.Server{
			Addr:              Addr(cfg.Server),
			Handler:           NewRouter(cfg, calc),
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}, nil
}

// Addr returns the listen address for a server config
func Addr(cfg config.ServerConfig) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

// Handler returns the server's HTTP handler
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server and blocks until shutdown
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}

	logging.Info("Starting deckcalc server",
		zap.String("addr", listener.Addr().String()),
		zap.String("version", version.Version),
		zap.Float64("min_ft", s.config.Limits.Min),
		zap.Float64("max_ft", s.config.Limits.Max),
	)

	if s.config.Server.Advertise {
		port := listener.Addr().(*net.TCPAddr).Port
		adv, err := discovery.Advertise(s.config.Server.InstanceName, port, version.Version)
		if err != nil {
			// serving without discovery is still useful
			logging.Warn("mDNS advertisement failed", zap.Error(err))
		} else {
			s.advertiser = adv
			logging.Info("Advertising via mDNS",
				zap.String("service", discovery.ServiceType),
				zap.String("instance", s.config.Server.InstanceName),
			)
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve(listener)
	}()

	select {
	case <-sigChan:
		logging.Info("Shutdown signal received, stopping server...")
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return s.Shutdown(ctx)
	case err := <-errChan:
		s.advertiser.Shutdown()
		return err
	}
}

// Serve handles requests on listener until Shutdown is called.
func (s *Server) Serve(listener net.Listener) error {
	err := s.httpServer.Serve(listener)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logging.Info("Shutting down server...")

	s.advertiser.Shutdown()

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		logging.Warn("Shutdown timeout, forcing close", zap.Error(err))
		_ = s.httpServer.Close()
	} else {
		logging.Info("All connections closed gracefully")
	}

	logging.Sync()
	return err
}
