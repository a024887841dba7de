package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/geocoding"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/objstore"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres"
	"github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/audit"
	contentrepo "github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/content"
	issuerepo "github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/issue"
	solutionrepo "github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/solution"
	userrepo "github.com/gramaconnect/gramaconnect-backend/internal/adapter/postgres/user"
	redisadapter "github.com/gramaconnect/gramaconnect-backend/internal/adapter/redis"
	"github.com/gramaconnect/gramaconnect-backend/internal/auth"
	"github.com/gramaconnect/gramaconnect-backend/internal/config"
	"github.com/gramaconnect/gramaconnect-backend/internal/metrics"
	authsvc "github.com/gramaconnect/gramaconnect-backend/internal/service/auth"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/dashboard"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/education"
	issuesvc "github.com/gramaconnect/gramaconnect-backend/internal/service/issue"
	"github.com/gramaconnect/gramaconnect-backend/internal/service/location"
	solutionsvc "github.com/gramaconnect/gramaconnect-backend/internal/service/solution"
	"github.com/gramaconnect/gramaconnect-backend/internal/transport/middleware"
	"github.com/gramaconnect/gramaconnect-backend/internal/transport/rest"
	"github.com/gramaconnect/gramaconnect-backend/pkg/photo"
)

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, Redis and (optionally) object storage, wires the services and
// serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	version := BuildVersion()

	logger.Info("starting application",
		slog.String("version", version),
		slog.String("env", cfg.Server.Env),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	rdb, err := redisadapter.NewClient(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	m := metrics.New()

	photos, store, err := newPhotoStore(ctx, cfg.Storage, logger)
	if err != nil {
		return err
	}

	users := userrepo.New(pool)
	issues := issuerepo.New(pool)
	solutions := solutionrepo.New(pool)
	contents := contentrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	issueDeps := issuesvc.Deps{
		Issues:  issues,
		Users:   users,
		Tx:      txm,
		Photos:  photos,
		History: audit.New(pool),
		Metrics: m,
	}
	if cfg.Issues.ReportsPerDay > 0 {
		issueDeps.Limiter = redisadapter.NewReportLimiter(rdb, "reports", cfg.Issues.ReportsPerDay, cfg.Issues.ReportWindow)
	} else {
		logger.Info("report quota disabled")
	}
	issueService := issuesvc.NewService(logger, issueDeps, cfg.Issues)
	solutionService := solutionsvc.NewService(logger, solutions, issues)
	educationService := education.NewService(logger, contents)
	dashboardService := dashboard.NewService(logger, issues, users)

	var locationService *location.Service
	if cfg.Geocoding.Enabled() {
		geo := geocoding.New(cfg.Geocoding, redisadapter.NewGeoCache(rdb, cfg.Geocoding.CacheTTL), logger)
		locationService = location.NewService(logger, geo, m)
	} else {
		logger.Warn("geocoding disabled: GOOGLE_MAPS_API_KEY is not set")
		locationService = location.NewService(logger, nil, m)
	}

	components := map[string]rest.Pinger{
		"database": pool,
		"redis":    rest.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() }),
	}
	if store != nil {
		components["storage"] = store
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	router := rest.NewRouter(rest.Handlers{
		Health:    rest.NewHealthHandler(components, version),
		Auth:      rest.NewAuthHandler(authService, logger),
		Issues:    rest.NewIssueHandler(issueService, logger),
		Solutions: rest.NewSolutionHandler(solutionService, logger),
		Content:   rest.NewContentHandler(educationService, logger),
		Dashboard: rest.NewDashboardHandler(dashboardService, logger),
		Location:  rest.NewLocationHandler(locationService, logger),
		Metrics:   m.Handler(),
	}, rest.RouterDeps{
		Logger:     logger,
		Tokens:     jwtManager,
		Users:      users,
		Limiter:    limiter,
		RateLimit:  cfg.RateLimit,
		CORS:       cfg.CORS,
		Instrument: m.Middleware,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      http.MaxBytesHandler(router, cfg.Server.MaxBodyBytes),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

type photoStore interface {
	StorePhoto(ctx context.Context, issueID uuid.UUID, n int, p photo.Photo) (string, error)
	DeletePhotos(ctx context.Context, issueID uuid.UUID) error
}

// newPhotoStore returns the photo sink for new reports. With storage disabled
// photos stay inline as data URLs and the returned client is nil.
func newPhotoStore(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (photoStore, *objstore.Client, error) {
	if !cfg.Enabled {
		logger.Info("object storage disabled, photos are stored inline")
		return objstore.Inline{}, nil, nil
	}

	client, err := objstore.NewClient(cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	if err := client.EnsureBucket(ctx); err != nil {
		return nil, nil, err
	}
	return client, client, nil
}
