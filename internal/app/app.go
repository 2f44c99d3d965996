package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Musicista92/progettofinalecapstone-sub000/internal/auth"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/config"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/handler"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/metrics"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/middleware"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/notification"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/repository"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/router"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/scheduler"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/service/ports"
	"github.com/Musicista92/progettofinalecapstone-sub000/internal/storage"
	"github.com/go-redis/redis/v8"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	migrationsDir  = "migrations"
	connectTimeout = 10 * time.Second
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	db         *dbpg.DB
	mongo      *mongo.Client
	redis      *redis.Client
	httpServer *http.Server
	scheduler  *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"RitmoCaribe",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initMongo(); err != nil {
		return nil, fmt.Errorf("init mongo: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initMongo() error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := repository.OpenMongo(ctx, a.cfg.Mongo.URI)
	if err != nil {
		return err
	}

	a.mongo = client
	a.log.LogAttrs(ctx, logger.InfoLevel, "mongo connected",
		logger.String("database", a.cfg.Mongo.Database),
	)
	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(ctx, logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initServices() error {
	userRepo := repository.NewUserRepo(a.db)
	followRepo := repository.NewFollowRepo(a.db)
	eventRepo := repository.NewEventRepo(a.db)
	participationRepo := repository.NewParticipationRepo(a.db)
	favouriteRepo := repository.NewFavouriteRepo(a.db)
	galleryRepo := repository.NewGalleryRepo(a.db)
	commentRepo := repository.NewCommentRepo(a.db)
	sessions := repository.NewSessionStore(a.redis)

	notificationRepo := repository.NewNotificationRepo(a.mongo.Database(a.cfg.Mongo.Database))
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := notificationRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("notification indexes: %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	deliverer, err := a.newDispatcher()
	if err != nil {
		return err
	}

	images, err := a.newImageStore()
	if err != nil {
		return err
	}

	tokens := auth.NewTokenManager(
		a.cfg.Auth.AccessSecret,
		a.cfg.Auth.RefreshSecret,
		a.cfg.Auth.AccessTTL,
		a.cfg.Auth.RefreshTTL,
	)
	hasher := auth.NewBcryptHasher(a.cfg.Auth.BcryptCost)
	appURL := a.cfg.App.PublicURL

	notificationService := service.NewNotificationService(
		notificationRepo, userRepo, eventRepo, commentRepo, deliverer, m, a.log,
	)
	authService := service.NewAuthService(userRepo, sessions, tokens, hasher, a.log)
	eventService := service.NewEventService(eventRepo, galleryRepo, participationRepo, images, m, a.log)
	moderationService := service.NewModerationService(
		eventRepo, userRepo, notificationService, deliverer, m, a.log, appURL,
	)
	participationService := service.NewParticipationService(
		eventRepo, participationRepo, favouriteRepo, notificationService, m, a.log, appURL,
	)
	commentService := service.NewCommentService(commentRepo, eventRepo, notificationService, m, a.log, appURL)
	userService := service.NewUserService(
		userRepo, followRepo, notificationRepo, notificationService, m, a.log, appURL,
	)
	maintenanceService := service.NewMaintenanceService(
		eventRepo, participationRepo, notificationRepo, a.cfg.Scheduler.NotificationRetention, m,
	)

	a.scheduler = scheduler.New(
		maintenanceService,
		a.cfg.Scheduler.Interval,
		a.log,
	)

	handler.UseJSONFieldNames()
	h := handler.NewHandler(
		authService,
		eventService,
		moderationService,
		participationService,
		commentService,
		notificationService,
		userService,
	)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		authService,
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		middleware.RequestID(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
		middleware.Metrics(m),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) newDispatcher() (*notification.Dispatcher, error) {
	templates, err := notification.NewTemplates()
	if err != nil {
		return nil, fmt.Errorf("load templates: %w", err)
	}

	smtp := a.cfg.SMTP
	mailer := notification.NewMailer(smtp.Host, smtp.Port, smtp.Username, smtp.Password, smtp.From)
	if !mailer.Enabled() {
		a.log.Warn("smtp host is empty, email delivery disabled")
	}

	tg, err := notification.NewTelegramSender(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return nil, fmt.Errorf("init telegram: %w", err)
	}

	return notification.NewDispatcher(templates, mailer, tg, a.log), nil
}

func (a *App) newImageStore() (ports.ImageStore, error) {
	cc := a.cfg.Cloudinary
	if cc.CloudName == "" {
		a.log.Warn("cloudinary is not configured, image uploads disabled")
		return storage.Disabled{}, nil
	}

	store, err := storage.NewCloudinaryStore(cc.CloudName, cc.APIKey, cc.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return store, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.scheduler.Start(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	var errs []error
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("http server shutdown: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}

	if err := a.mongo.Disconnect(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("close mongo: %w", err))
	}

	if err := a.db.Master.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close db: %w", err))
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "connections closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return errors.Join(errs...)
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}
