// Package server exposes the launcher to a local UI shell over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/danmuck/kawaiictl/internal/observability"
	"github.com/danmuck/kawaiictl/internal/tools"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Launcher is the launch surface the server drives.
type Launcher interface {
	Start(ctx context.Context, username, versionID string) (tools.Process, error)
}

type Config struct {
	Addr        string
	CorsOrigins []string
	// LaunchTimeout bounds the fetch phase of one request; zero means none.
	LaunchTimeout time.Duration
}

// Server serializes launches against one installation root and collapses
// identical in-flight requests into a single launch.
type Server struct {
	cfg       Config
	launcher  Launcher
	logger    zerolog.Logger
	router    *gin.Engine
	startedAt time.Time

	launchMu sync.Mutex
	inflight singleflight.Group
}

func New(cfg Config, launcher Launcher, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	s := &Server{
		cfg:       cfg,
		launcher:  launcher,
		logger:    logger,
		router:    gin.New(),
		startedAt: time.Now(),
	}
	s.router.Use(gin.Recovery())
	s.router.Use(observability.RequestLogger(logger))
	s.router.Use(observability.RequestMetricsMiddleware())
	if len(cfg.CorsOrigins) > 0 {
		s.router.Use(cors.New(cors.Config{
			AllowOrigins: cfg.CorsOrigins,
			AllowMethods: []string{"GET", "POST"},
			AllowHeaders: []string{"Origin", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}
	s.registerRoutes()
	return s
}

// Handler is the router, for embedding or httptest.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Serve blocks until ctx is done, then shuts the listener down.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:              strings.TrimSpace(s.cfg.Addr),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", srv.Addr).Msg("server.serve listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info().Msg("server.serve shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

type launchResult struct {
	proc tools.Process
	err  error
}

// launchOnce runs one serialized launch; concurrent duplicates share its result.
// The shared call ignores the first caller's cancellation; LaunchTimeout
// still bounds it.
func (s *Server) launchOnce(ctx context.Context, username, versionID string) (tools.Process, bool, error) {
	key := username + "\x00" + versionID
	v, _, shared := s.inflight.Do(key, func() (any, error) {
		s.launchMu.Lock()
		defer s.launchMu.Unlock()

		ctx := context.WithoutCancel(ctx)
		if s.cfg.LaunchTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.cfg.LaunchTimeout)
			defer cancel()
		}
		proc, err := s.launcher.Start(ctx, username, versionID)
		return launchResult{proc: proc, err: err}, nil
	})
	res := v.(launchResult)
	return res.proc, shared, res.err
}
