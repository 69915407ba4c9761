package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"

	"hackathon-catalog.backend/internal/config"
	"hackathon-catalog.backend/internal/infrastructure/datasources/database"
	"hackathon-catalog.backend/internal/infrastructure/procedures"
	"hackathon-catalog.backend/internal/infrastructure/repositories"
	"hackathon-catalog.backend/internal/interfaces/http/handlers"
	"hackathon-catalog.backend/internal/interfaces/http/middleware"
	"hackathon-catalog.backend/internal/metrics"
	"hackathon-catalog.backend/internal/usecases"
	"hackathon-catalog.backend/pkg/logger"
	"hackathon-catalog.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv   = godotenv.Load
	loadCfg      = config.Load
	initLog      = logger.Init
	setLogLevel  = logger.SetLevel
	connectRedis = redis.Connect
	openDB       = database.NewConnection
	runServer    = func(srv *http.Server) error { return srv.ListenAndServe() }
	getStdDB     = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	if cfg.Server.LogLevel != "" {
		level, err := zapcore.ParseLevel(cfg.Server.LogLevel)
		if err != nil {
			logger.Warn(ctx, "Ignoring invalid LOG_LEVEL", zap.String("level", cfg.Server.LogLevel))
		} else {
			setLogLevel(level)
		}
	}
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	// Idempotency store, optional
	var idemStore middleware.IdempotencyStore
	if cfg.Redis.URL != "" {
		store, err := connectRedis(cfg.Redis.URL, cfg.Redis.Password)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer store.Close()
		idemStore = store
		logger.Info(ctx, "Redis initialized, idempotency enabled")
	} else {
		logger.Info(ctx, "REDIS_URL not set, idempotency disabled")
	}

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dialect, err := procedures.DialectFor(cfg.Database.Driver)
	if err != nil {
		return fmt.Errorf("unsupported database driver: %w", err)
	}

	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		logger.Warn(ctx, "Database not available, endpoints will report failures", zap.Error(err))
	} else {
		logger.Info(ctx, "Connected to database", zap.String("driver", dialect.Name()))
	}

	// Gateway and repositories
	gateway := procedures.NewGateway(db, dialect)
	session := procedures.NewSession(db)

	studentRepo := repositories.NewStudentRepository(gateway)
	mentorRepo := repositories.NewMentorRepository(gateway)
	experimentalRepo := repositories.NewExperimentalChallengeRepository(gateway)
	realRepo := repositories.NewRealChallengeRepository(gateway)
	teamRepo := repositories.NewTeamRepository(gateway)

	// Usecases
	studentUsecase := usecases.NewStudentUsecase(studentRepo)
	mentorUsecase := usecases.NewMentorUsecase(mentorRepo)
	experimentalUsecase := usecases.NewExperimentalChallengeUsecase(experimentalRepo)
	realUsecase := usecases.NewRealChallengeUsecase(realRepo)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, session)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	registerFallbacks(r)
	registerHealthRoute(r, sqlDB.PingContext)
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		if err := metrics.Register(reg); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
		registerMetricsRoute(r, reg)
	}
	registerAPIRoutes(r, routeDeps{
		studentHandler:      handlers.NewStudentHandler(studentUsecase),
		mentorHandler:       handlers.NewMentorHandler(mentorUsecase),
		experimentalHandler: handlers.NewExperimentalChallengeHandler(experimentalUsecase),
		realHandler:         handlers.NewRealChallengeHandler(realUsecase),
		teamHandler:         handlers.NewTeamHandler(teamUsecase),
		idempotency:         middleware.IdempotencyMiddleware(idemStore, cfg.Redis.IdempotencyTTL),
	})

	for _, route := range r.Routes() {
		logger.Debug(ctx, "Route registered", zap.String("method", route.Method), zap.String("path", route.Path))
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newCORSHandler(cfg.CORS.AllowedOrigins, r),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	logger.Info(ctx, "Hackathon catalog backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("api", "http://localhost:"+cfg.Server.Port+"/api"),
		zap.String("health", "http://localhost:"+cfg.Server.Port+"/health"),
	)

	serverErr := make(chan error, 1)
	go func() { serverErr <- runServer(srv) }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case sig := <-quit:
		logger.Info(ctx, "Shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
