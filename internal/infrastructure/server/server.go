package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"

	httpapi "github.com/GriffinCanCode/CourseCatalog/backend/internal/api/http"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/api/middleware"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/config"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/logging"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/resilience"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/storage"
	"github.com/GriffinCanCode/CourseCatalog/backend/internal/infrastructure/tracing"
)

// Server wraps the HTTP server and dependencies
type Server struct {
	router  *gin.Engine
	http    *http.Server
	store   storage.Store
	tracer  *tracing.Tracer
	logger  *logging.Logger
	config  *config.Config
	metrics *monitoring.Metrics
}

// NewServer creates a new server instance
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	logCfg := logging.DefaultConfig(cfg.Logging.File)
	logCfg.Level = cfg.Logging.Level
	logCfg.Development = cfg.Logging.Development
	logger, err := logging.New(logCfg)
	if err != nil {
		return nil, err
	}

	logger.Info("Initializing Course Catalog server",
		zap.String("port", cfg.Server.Port),
		zap.String("store_backend", cfg.Store.Backend),
	)

	// Metrics first, the store decorator needs them
	registry := monitoring.NewRegistry()
	metrics := monitoring.NewMetrics(registry)

	tracer, err := tracing.New(ctx, tracing.Config{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		Enabled:     cfg.Tracing.Enabled,
	})
	if err != nil {
		return nil, err
	}
	if cfg.Tracing.Enabled {
		logger.Info("Span export enabled", zap.String("endpoint", cfg.Tracing.Endpoint))
	}

	store, err := openStore(ctx, cfg, logger)
	if err != nil {
		_ = tracer.Shutdown(ctx)
		return nil, err
	}
	store = storage.Instrument(store, metrics)

	if cfg.Store.SeedFile != "" {
		if err := seed(ctx, store, cfg.Store.SeedFile, logger); err != nil {
			_ = store.Close()
			_ = tracer.Shutdown(ctx)
			return nil, err
		}
	}

	tmpl, err := httpapi.Templates()
	if err != nil {
		_ = store.Close()
		_ = tracer.Shutdown(ctx)
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.SetHTMLTemplate(tmpl)

	// Tracing wraps everything so recovery can mark the request span
	router.Use(tracing.HTTPMiddleware(tracer))
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger.Logger))
	router.Use(monitoring.Middleware(metrics))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	if cfg.RateLimit.Enabled {
		logger.Info("Rate limiting enabled",
			zap.Int("rps", cfg.RateLimit.RequestsPerSecond),
			zap.Int("burst", cfg.RateLimit.Burst),
		)
		rl := middleware.DefaultRateLimitConfig()
		rl.RequestsPerSecond = cfg.RateLimit.RequestsPerSecond
		rl.Burst = cfg.RateLimit.Burst
		router.Use(middleware.RateLimit(rl, logger.Logger))
	}

	handlers := httpapi.NewHandlers(store, httpapi.NewFlashStore(cfg.Flash.Secret), tracer, metrics, logger.Logger)
	handlers.Register(router)
	router.GET("/metrics", gin.WrapH(monitoring.Handler(registry)))

	logger.Info("Server initialized successfully")

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
			Handler:           gzhttp.GzipHandler(router),
			ReadHeaderTimeout: 10 * time.Second,
		},
		store:   store,
		tracer:  tracer,
		logger:  logger,
		config:  cfg,
		metrics: metrics,
	}, nil
}

// Handler returns the root handler, compression included.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests, flushes spans and closes the store.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")

	var errs []error
	if err := s.http.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop http server: %w", err))
	}
	if err := s.tracer.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to flush spans: %w", err))
	}
	if err := s.store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close store: %w", err))
	}
	for _, err := range errs {
		s.logger.Error("Shutdown error", zap.Error(err))
	}

	// Sync logger before exit
	_ = s.logger.Sync()

	return errors.Join(errs...)
}

func openStore(ctx context.Context, cfg *config.Config, logger *logging.Logger) (storage.Store, error) {
	switch cfg.Store.Backend {
	case config.BackendRedis:
		client, err := storage.DialRedis(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		breaker := resilience.New("redis", resilience.Settings{
			Threshold: cfg.Redis.BreakerThreshold,
			Cooldown:  cfg.Redis.BreakerCooldown,
			OnStateChange: func(name string, from, to resilience.State) {
				logger.Warn("Store circuit breaker changed state",
					zap.String("breaker", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
			},
		})
		logger.Info("Connected to redis", zap.String("addr", cfg.Redis.Addr), zap.String("key", cfg.Redis.Key))
		return storage.Guard(storage.NewRedisStore(client, cfg.Redis.Key), breaker), nil
	case config.BackendFile:
		return storage.NewFileStore(cfg.Store.File), nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

func seed(ctx context.Context, store storage.Store, path string, logger *logging.Logger) error {
	courses, err := storage.LoadSeeds(path)
	if err != nil {
		return err
	}
	n, err := storage.Seed(ctx, store, courses)
	if err != nil {
		return err
	}
	logger.Info("Seeded course catalog", zap.String("file", path), zap.Int("courses", n))
	return nil
}
