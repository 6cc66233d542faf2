package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/codementor/codementor-api/config"
	"github.com/codementor/codementor-api/internal/ai"
	"github.com/codementor/codementor-api/internal/appstate"
	"github.com/codementor/codementor-api/internal/cache"
	"github.com/codementor/codementor-api/internal/handlers"
	"github.com/codementor/codementor-api/internal/middleware"
	"github.com/codementor/codementor-api/internal/notify"
	"github.com/codementor/codementor-api/internal/services"
	"github.com/codementor/codementor-api/internal/store"
	"github.com/codementor/codementor-api/internal/warroom"
	"github.com/codementor/codementor-api/pkg/db"
	"github.com/codementor/codementor-api/pkg/httpclient"
	appjwt "github.com/codementor/codementor-api/pkg/jwt"
	"github.com/codementor/codementor-api/pkg/logger"
	"github.com/codementor/codementor-api/pkg/metrics"
	"github.com/codementor/codementor-api/pkg/objectstore"
	"github.com/codementor/codementor-api/pkg/profiling"
	"github.com/codementor/codementor-api/pkg/tracing"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const serviceName = "codementor-api"

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	if err := logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.LogDir,
		Environment: cfg.Environment,
		ServiceName: serviceName,
	}); err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	logger.Info("Starting codementor-api",
		zap.String("version", version),
		zap.String("environment", cfg.Environment))

	metrics.Init(serviceName)
	metrics.RecordInfrastructureMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hostname, _ := os.Hostname()

	shutdownTracer, err := tracing.InitTracer(serviceName, "codementor", version, hostname, cfg.Environment, cfg.Observability.OTLPEndpoint)
	if err != nil {
		logger.Warn("Tracing disabled", zap.Error(err))
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(shutdownCtx); err != nil {
				logger.Warn("Tracer shutdown failed", zap.Error(err))
			}
		}()
	}

	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(profiling.Config{
			Enabled:               true,
			Endpoint:              cfg.Profiling.Endpoint,
			AppName:               cfg.Profiling.AppName,
			SampleTypes:           cfg.Profiling.SampleTypes,
			UploadIntervalSeconds: cfg.Profiling.UploadIntervalSeconds,
		}, serviceName, "codementor", version, hostname, cfg.Environment)
		if err != nil {
			logger.Warn("Profiling disabled", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	kv, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to open store backend", zap.Error(err))
	}

	appStore := store.New(kv)
	defer appStore.Close()

	if err := appStore.Initialize(ctx); err != nil {
		logger.Fatal("Failed to initialize store", zap.Error(err))
	}

	collaborator, err := ai.NewGeminiCollaborator(ctx, cfg.AI.GeminiAPIKey, cfg.AI.Model, cfg.AI.Timeout)
	if err != nil {
		logger.Fatal("Failed to create AI collaborator", zap.Error(err))
	}

	var objects *objectstore.StorageClient
	if cfg.ObjectStorage.Enabled {
		objects, err = objectstore.NewStorageClient(
			cfg.ObjectStorage.AccessKeyID,
			cfg.ObjectStorage.SecretAccessKey,
			cfg.ObjectStorage.Bucket,
			cfg.ObjectStorage.Endpoint,
			cfg.ObjectStorage.Region,
		)
		if err != nil {
			logger.Fatal("Failed to create object storage client", zap.Error(err))
		}
	}

	mentorCache := cache.NewMentorCache(cfg.Cache.MentorTTL, cfg.Cache.CleanupInterval)
	toasts := notify.NewService(notify.DefaultExpiry)
	defer toasts.Shutdown()

	machines := appstate.NewRegistry()
	rooms := warroom.NewManager()
	defer rooms.Shutdown()

	webClient := httpclient.NewStandardClient()
	tokens := appjwt.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.SessionTTLHours)

	authService := services.NewAuthService(appStore)
	mentorService := services.NewMentorService(mentorCache, collaborator)
	sessionService := services.NewSessionService(appStore)
	requestService := services.NewRequestService(appStore)
	problemService := services.NewProblemService(appStore, collaborator)
	profileService := services.NewProfileService(appStore, objects)
	gamificationService := services.NewGamificationService()
	reportService := services.NewReportService(cfg.Report.WebhookURL, webClient)

	cookie := middleware.SessionCookieConfig{
		Name:   cfg.Auth.CookieName,
		Domain: cfg.Auth.CookieDomain,
		Secure: cfg.Auth.CookieSecure,
		TTL:    tokens.GetExpirationTime(),
	}

	h := handlers.Handlers{
		Auth:         handlers.NewAuthHandler(authService, machines, tokens, cookie, toasts),
		App:          handlers.NewAppHandler(authService, machines, toasts),
		Mentors:      handlers.NewMentorHandler(mentorService, toasts),
		Sessions:     handlers.NewSessionHandler(sessionService, machines, rooms),
		WarRoom:      handlers.NewWarRoomHandler(sessionService, machines, rooms, collaborator, toasts),
		Requests:     handlers.NewRequestHandler(requestService, toasts),
		Problems:     handlers.NewProblemHandler(problemService, toasts),
		Profile:      handlers.NewProfileHandler(profileService, toasts),
		Gamification: handlers.NewGamificationHandler(gamificationService, toasts),
		Reports:      handlers.NewReportHandler(reportService, toasts),
		Toasts:       handlers.NewToastHandler(toasts),
		Health:       handlers.NewHealthHandler(appStore, version),
		Admin:        handlers.NewAdminHandler(appStore, toasts),
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(handlers.RouterConfig{
		ServiceName:    serviceName,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		MaxBodySizeMB:  cfg.Server.MaxBodySizeMB,
		GeneralRPS:     cfg.Server.RateLimitRPS,
		GeneralBurst:   cfg.Server.RateLimitBurst,
		Tokens:         tokens,
		CookieName:     cfg.Auth.CookieName,
	}, h)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

// openBackend selects the key-value backend from config
func openBackend(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.Database.Driver {
	case "postgres":
		pool, err := db.NewPool(ctx, db.PoolConfig{
			URL:      cfg.Database.URL,
			MaxConns: cfg.Database.MaxConns,
			MinConns: cfg.Database.MinConns,
		})
		if err != nil {
			return nil, err
		}
		return store.NewPostgresKV(pool), nil
	default:
		return store.NewSQLiteKV(cfg.Database.SQLitePath)
	}
}
