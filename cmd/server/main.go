package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appchat "github.com/dicky/portfolio/internal/application/chat"
	"github.com/dicky/portfolio/internal/application/media"
	appportfolio "github.com/dicky/portfolio/internal/application/portfolio"
	"github.com/dicky/portfolio/internal/infrastructure/ai"
	"github.com/dicky/portfolio/internal/infrastructure/auth"
	"github.com/dicky/portfolio/internal/infrastructure/cache"
	"github.com/dicky/portfolio/internal/infrastructure/config"
	"github.com/dicky/portfolio/internal/infrastructure/event"
	"github.com/dicky/portfolio/internal/infrastructure/logger"
	"github.com/dicky/portfolio/internal/infrastructure/persistence"
	"github.com/dicky/portfolio/internal/infrastructure/storage"
	"github.com/dicky/portfolio/internal/infrastructure/telemetry"
	"github.com/dicky/portfolio/internal/interfaces/http/handler"
	"github.com/dicky/portfolio/internal/interfaces/http/middleware"
	"github.com/dicky/portfolio/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

const uploadsRoute = "/uploads"

//go:generate swag init -g cmd/server/main.go -d ../../ -o ../../docs --parseInternal

//	@title			Portfolio API
//	@version		1.0
//	@description	Portfolio content, admin CMS and the streaming AI assistant.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Admin bearer token. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting portfolio backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	ctx := context.Background()

	tp, err := telemetry.NewTracerProvider(ctx, telemetry.ConfigFrom(cfg.Telemetry, version), log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithCustomLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if tp.IsEnabled() && cfg.Telemetry.DBTraceEnabled {
		if err := db.UseTracing(); err != nil {
			log.Warn("Database tracing unavailable", zap.Error(err))
		}
	}
	if cfg.Database.Driver == "sqlite" {
		if err := db.AutoMigrate(); err != nil {
			log.Fatal("Failed to migrate sqlite schema", zap.Error(err))
		}
	}
	log.Info("Database connected", zap.String("driver", cfg.Database.Driver))

	repos := appportfolio.Repositories{
		Projects: persistence.NewGormProjectRepository(db.DB),
		Journey:  persistence.NewGormJourneyRepository(db.DB),
		Services: persistence.NewGormServicePackageRepository(db.DB),
		Socials:  persistence.NewGormSocialLinkRepository(db.DB),
		Posts:    persistence.NewGormPostRepository(db.DB),
	}

	contextCache, cacheCloser := cache.NewContextCache(ctx, cfg.Redis, log)
	defer func() { _ = cacheCloser.Close() }()

	aggregator := appportfolio.NewContextAggregator(repos, cfg.Chat.ContextTimeout, log)
	contextSource := appportfolio.NewCachedContextSource(aggregator, contextCache, cfg.Chat.ContextCacheTTL, log)

	events := event.NewInMemoryEventBus(log)
	events.Subscribe(appportfolio.NewContextInvalidationHandler(contextSource, log))
	if err := events.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() { _ = events.Stop(context.Background()) }()
	content := appportfolio.NewContentService(repos, events, log)

	metrics := telemetry.NewMetrics(true)

	provider, err := ai.NewProvider(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal("Failed to initialize AI provider", zap.Error(err))
	}
	relay := appchat.NewRelayService(
		appchat.WithAPIKey(cfg.AI.APIKey),
		appchat.WithProvider(provider),
		appchat.WithContextSource(contextSource),
		appchat.WithMaxMessages(cfg.Chat.MaxMessages),
		appchat.WithLogger(log),
		appchat.WithRecorder(metrics),
	)

	objectStore, localDir, err := newObjectStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	mediaService := media.NewService(objectStore, cfg.Storage.MaxUploadSize, log)

	jwtService := auth.NewJWTService(cfg.JWT)

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
		log.Fatal("Invalid trusted proxies", zap.Error(err))
	}

	// Order matters: request ID first so every later layer can log it,
	// recovery before anything that may panic.
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log, "/health", "/metrics"))
	engine.Use(middleware.Tracing(middleware.TracingConfig{
		ServiceName: cfg.Telemetry.ServiceName,
		Enabled:     tp.IsEnabled(),
		SkipPaths:   []string{"/health", "/metrics"},
	}))
	engine.Use(middleware.SpanEnricher())
	engine.Use(middleware.HTTPMetrics(metrics, "/metrics"))
	engine.Use(middleware.Secure(middleware.DefaultSecurityConfig(cfg.App.IsProduction())))
	engine.Use(middleware.CORS(middleware.CORSConfigFrom(cfg.HTTP)))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize))

	if localDir != "" {
		engine.Static(uploadsRoute, localDir)
	}

	var chatLimit gin.HandlerFunc
	if cfg.Chat.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.Chat.RateLimitRequests, cfg.Chat.RateLimitWindow)
		defer limiter.Stop()
		chatLimit = middleware.RateLimit(limiter, handler.ChatLimitResponse)
		log.Info("Chat rate limiting enabled",
			zap.Int("requests", cfg.Chat.RateLimitRequests),
			zap.Duration("window", cfg.Chat.RateLimitWindow),
		)
	}

	system := handler.NewSystemHandler(cfg.App.Name, version).
		AddCheck("database", func(context.Context) error { return db.Ping() })
	if pinger, ok := contextCache.(interface{ Ping(context.Context) error }); ok {
		system.AddCheck("cache", pinger.Ping)
	}

	adminAuth := middleware.AdminAuth(middleware.JWTMiddlewareConfig{
		Validator: jwtService,
		Logger:    log,
	})
	routes := router.Mount(engine, router.Handlers{
		Portfolio: handler.NewPortfolioHandler(content),
		Admin:     handler.NewAdminHandler(content),
		Media:     handler.NewMediaHandler(mediaService),
		Chat:      handler.NewChatHandler(relay),
		SEO:       handler.NewSEOHandler(content, cfg.Site.BaseURL),
		System:    system,
	}, router.Guards{
		AdminAuth: adminAuth,
		ChatLimit: chatLimit,
		Metrics:   metrics.Handler(),
		Docs:      middleware.SwaggerProtection(cfg.Swagger, adminAuth),
	})
	log.Info("Routes mounted", zap.Int("api_routes", len(routes)))
	for _, r := range routes {
		log.Debug("Route", zap.String("route", r.String()))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
		return
	}

	log.Info("Server exited gracefully")
}

// newObjectStorage returns S3 storage when a bucket is configured and local
// disk storage otherwise. The second result is the directory to serve under
// /uploads, empty for S3.
func newObjectStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) (media.ObjectStorage, string, error) {
	if cfg.Storage.Bucket != "" {
		s3Store, err := storage.NewS3ObjectStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			return nil, "", err
		}
		if err := s3Store.EnsureBucket(ctx); err != nil {
			log.Warn("Could not verify media bucket", zap.String("bucket", s3Store.Bucket()), zap.Error(err))
		}
		log.Info("Using S3 media storage", zap.String("bucket", s3Store.Bucket()))
		return s3Store, "", nil
	}

	prefix := cfg.Storage.PublicBaseURL
	if prefix == "" {
		prefix = uploadsRoute
	}
	local, err := storage.NewLocalObjectStorage(cfg.Storage.LocalDir, prefix)
	if err != nil {
		return nil, "", err
	}
	log.Info("Using local media storage", zap.String("dir", cfg.Storage.LocalDir))
	return local, cfg.Storage.LocalDir, nil
}
