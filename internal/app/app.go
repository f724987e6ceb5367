package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"

	"github.com/shan-traders/storefront-backend/internal/cart"
	config "github.com/shan-traders/storefront-backend/internal/cfg"
	v1Http "github.com/shan-traders/storefront-backend/internal/delivery/v1/http"
	"github.com/shan-traders/storefront-backend/internal/infrastructure/mail"
	minioInfra "github.com/shan-traders/storefront-backend/internal/infrastructure/minio"
	s3Repo "github.com/shan-traders/storefront-backend/internal/repository/minio"
	"github.com/shan-traders/storefront-backend/internal/repository/pgdb"
	pgdbConv "github.com/shan-traders/storefront-backend/internal/repository/pgdb/converter"
	"github.com/shan-traders/storefront-backend/internal/repository/redis"
	redisConv "github.com/shan-traders/storefront-backend/internal/repository/redis/converter"
	"github.com/shan-traders/storefront-backend/internal/usecase"
	"github.com/shan-traders/storefront-backend/pkg/clients"
	"github.com/shan-traders/storefront-backend/pkg/closer"
	"github.com/shan-traders/storefront-backend/pkg/e"
	"github.com/shan-traders/storefront-backend/pkg/logger"
	"github.com/shan-traders/storefront-backend/pkg/postgres"
)

func Run() {
	logger := logger.NewSlogLogger()

	cfg, err := config.Load(logger)
	if err != nil {
		logger.Errorf(err, "failed to load config")
		os.Exit(1)
	}

	graceful := closer.NewCloser(2 * time.Second)

	db, err := initPGDB(logger, cfg)
	if err != nil {
		logger.Errorf(err, "failed to initialize database")
		os.Exit(1)
	}
	graceful.Add(func(ctx context.Context) error {
		db.Close()
		return nil
	})

	prConv := pgdbConv.NewProductConverter()
	sessionConv := redisConv.NewSessionConverter()

	productRepo := pgdb.NewProductRepo(db.Pool, prConv)

	minioClient, err := clients.NewMinIOClient(cfg.Minio)
	if err != nil {
		logger.Errorf(err, "failed to initialize minio client")
		os.Exit(1)
	}

	minioCtx, minioCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := clients.EnsureBucket(minioCtx, minioClient, cfg.Minio.BucketName); err != nil {
		minioCancel()
		logger.Errorf(err, "failed to initialize MinIO bucket")
		os.Exit(1)
	}
	minioCancel()

	imageRepo := s3Repo.NewImageRepo(minioClient, cfg.Minio)

	redisClient := clients.NewRedisClient(cfg.Redis)
	redisCtx, redisCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer redisCancel()
	if err := redisClient.Ping(redisCtx); err != nil {
		logger.Errorf(err, "failed to connect to redis")
		os.Exit(1)
	}
	graceful.Add(func(ctx context.Context) error {
		return redisClient.Client.Close()
	})

	sessionRepo := redis.NewSessionRepo(redisClient, sessionConv, cfg.Redis, logger)

	// Контекст остановки для фоновой очистки блобов.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	imagesInfra := minioInfra.NewMinioInfrastructure(imageRepo, cfg.Minio, logger, appCtx)
	graceful.Add(func(ctx context.Context) error {
		return imagesInfra.WaitForCleanup(ctx)
	})

	mailer := mail.NewSMTPMailer(cfg.Smtp, cfg.Quote, logger)

	catalogUC := usecase.NewCatalogUC(productRepo, logger)
	productUC := usecase.NewProductUC(productRepo, imagesInfra, db.Pool, cfg.Minio, logger)
	quoteUC := usecase.NewQuoteUC(mailer, logger)
	authUC := usecase.NewAuthUC(sessionRepo, cfg.Admin, logger)

	carts := cart.NewStore()

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, logger)
	router.Init(catalogUC, productUC, quoteUC, authUC, carts, cfg)

	httpSrv := v1Http.NewServer(r, cfg.Http)
	graceful.Add(func(ctx context.Context) error {
		return httpSrv.Stop(ctx)
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server started on port %s", cfg.Http.Port)
		if err := httpSrv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(err, "HTTP server failed: %v", err)
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	var appErr error
	select {
	case appErr = <-errCh:
		logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	appCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := graceful.Close(shutdownCtx); err != nil {
		logger.Warnf("shutdown finished with errors: %v", err)
	}

	logger.Infof("Application shutdown complete")
	if appErr != nil {
		os.Exit(1)
	}
}

func initPGDB(logger logger.Logger, cfg *config.Config) (*postgres.PgDatabase, error) {
	db, err := postgres.Connect(cfg.Db)
	if err != nil {
		logger.Errorf(err, "failed to connect to database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.RunMigrations(logger); err != nil {
		logger.Errorf(err, "failed to run migrations")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := db.Ping(); err != nil {
		logger.Errorf(err, "failed to ping database")
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return db, nil
}
