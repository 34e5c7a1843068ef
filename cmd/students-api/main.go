package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/noah-isme/students-api/internal/handler"
	"github.com/noah-isme/students-api/internal/repository"
	"github.com/noah-isme/students-api/internal/server"
	"github.com/noah-isme/students-api/internal/service"
	"github.com/noah-isme/students-api/pkg/cache"
	"github.com/noah-isme/students-api/pkg/config"
	"github.com/noah-isme/students-api/pkg/database"
	"github.com/noah-isme/students-api/pkg/logger"
)

// @title Students API
// @version 1.0.0
// @description Role-scoped access to student records
// @BasePath /
// @schemes http

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(cfg, logr); err != nil {
		logr.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logr *zap.Logger) error {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	logr.Info("database connected", zap.String("driver", cfg.Database.Driver), zap.Int("max_open_conns", cfg.Database.MaxOpenConns))

	metrics := service.NewMetricsService()

	var cacheRepo service.StudentCacheRepository
	if cfg.Cache.Enabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, student cache disabled", zap.Error(err))
		} else {
			repo := repository.NewStudentCacheRepository(client)
			defer repo.Close() //nolint:errcheck
			cacheRepo = repo
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Cache.TTL, logr, cacheRepo != nil)

	studentRepo := repository.NewStudentRepository(db, metrics)
	students := service.NewStudentService(studentRepo, cacheSvc, validator.New(), logr)
	exports := service.NewExportService(students, logr)

	router := server.NewRouter(server.Deps{
		Logger:         logr,
		Metrics:        metrics,
		Auth:           service.NewAuthService(cfg.Auth, logr),
		Students:       handler.NewStudentHandler(students, exports),
		MetricsHandler: handler.NewMetricsHandler(metrics, studentRepo),
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logr.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logr.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
