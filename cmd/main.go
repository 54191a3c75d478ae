package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	cartapp "github.com/muhammadheryan/micromarket/application/cart"
	catalogapp "github.com/muhammadheryan/micromarket/application/catalog"
	dashboardapp "github.com/muhammadheryan/micromarket/application/dashboard"
	notificationapp "github.com/muhammadheryan/micromarket/application/notification"
	reviewapp "github.com/muhammadheryan/micromarket/application/review"
	sessionapp "github.com/muhammadheryan/micromarket/application/session"
	"github.com/muhammadheryan/micromarket/cmd/config"
	redisclient "github.com/muhammadheryan/micromarket/cmd/redis"
	"github.com/muhammadheryan/micromarket/constant"
	_ "github.com/muhammadheryan/micromarket/docs"
	"github.com/muhammadheryan/micromarket/model"
	analyticsRepo "github.com/muhammadheryan/micromarket/repository/analytics"
	authRepo "github.com/muhammadheryan/micromarket/repository/auth"
	cartRepo "github.com/muhammadheryan/micromarket/repository/cart"
	demoRepo "github.com/muhammadheryan/micromarket/repository/demo"
	notificationRepo "github.com/muhammadheryan/micromarket/repository/notification"
	orderRepo "github.com/muhammadheryan/micromarket/repository/order"
	productRepo "github.com/muhammadheryan/micromarket/repository/product"
	reviewRepo "github.com/muhammadheryan/micromarket/repository/review"
	"github.com/muhammadheryan/micromarket/repository/storage"
	supplierRepo "github.com/muhammadheryan/micromarket/repository/supplier"
	txRepo "github.com/muhammadheryan/micromarket/repository/tx"
	"github.com/muhammadheryan/micromarket/thirdparty/marketapi"
	"github.com/muhammadheryan/micromarket/thirdparty/rabbitmq"
	"github.com/muhammadheryan/micromarket/transport"
	"github.com/muhammadheryan/micromarket/utils/logger"
	"github.com/muhammadheryan/micromarket/utils/metrics"
	"github.com/muhammadheryan/micromarket/utils/tracing"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// @title MICROMARKET CLIENT API
// @version 1.0
// @description Local view gateway of the MicroMarket wholesale marketplace client
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting client", zap.String("env", cfg.Environment), zap.String("backend", cfg.Backend.URL))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(cfg.Tracing.Enabled, cfg.Tracing.ServiceName, os.Stdout)
	if err != nil {
		logger.Fatal("err init tracing", zap.Error(err))
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	// Metrics registry
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	backendMetrics := metrics.NewBackendMetrics(reg)

	client := marketapi.New(marketapi.Options{
		BaseURL: cfg.Backend.URL,
		Timeout: cfg.Backend.Timeout,
		Metrics: backendMetrics,
	})

	storageRepo, closeStorage := openStorage(ctx, cfg)
	defer closeStorage()

	// Activity events
	var publisher rabbitmq.Publisher
	instanceID := uuid.NewString()
	if cfg.RabbitMQ.Enabled {
		p, err := rabbitmq.NewActivityPublisher(cfg.GetRabbitMQURL(), cfg.RabbitMQ.Exchange, instanceID)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = p.Close()
		}()
		publisher = p
	}

	// Initialize repositories
	AuthRepo := authRepo.NewAuthRepository(client)
	SupplierRepo := supplierRepo.NewSupplierRepository(client)
	ProductRepo := productRepo.NewProductRepository(client)
	CartRepo := cartRepo.NewCartRepository(client)
	ReviewRepo := reviewRepo.NewReviewRepository(client)
	NotificationRepo := notificationRepo.NewNotificationRepository(client)
	OrderRepo := orderRepo.NewOrderRepository(client)
	AnalyticsRepo := analyticsRepo.NewAnalyticsRepository(client)
	var DemoRepo demoRepo.DemoRepository
	if cfg.Backend.SeedDemo {
		DemoRepo = demoRepo.NewDemoRepository(client)
	}

	// Initialize application layers
	SessionApp := sessionapp.NewSessionApp(AuthRepo, storageRepo, publisher)
	CatalogApp := catalogapp.NewCatalogApp(SupplierRepo, DemoRepo)
	CartApp := cartapp.NewCartApp(CartRepo, SessionApp, publisher)
	ReviewApp := reviewapp.NewReviewApp(ReviewRepo, SessionApp, CatalogApp, publisher)
	NotificationApp := notificationapp.NewNotificationApp(NotificationRepo, SessionApp)
	DashboardApp := dashboardapp.NewDashboardApp(dashboardapp.Repositories{
		Supplier:  SupplierRepo,
		Product:   ProductRepo,
		Analytics: AnalyticsRepo,
		Order:     OrderRepo,
	}, SessionApp)

	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewActivityConsumer(cfg.GetRabbitMQURL(), cfg.RabbitMQ.Exchange, constant.ActivityCartChanged)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer func() {
			_ = consumer.Close()
		}()

		// another instance changed this user's cart: re-read, never merge
		err = consumer.Start(ctx, func(ctx context.Context, event model.ActivityEvent) error {
			user, ok := SessionApp.Current()
			if event.Source == instanceID || !ok || user.ID != event.UserID {
				return nil
			}
			return CartApp.Load(ctx)
		})
		if err != nil {
			logger.Fatal("err start rabbitmq consumer", zap.Error(err))
		}
	}

	// Startup: restore the saved session, then the initial views
	if restored, err := SessionApp.Restore(ctx); err != nil {
		logger.Warn("err restore session", zap.Error(err))
	} else if restored {
		logger.Info("session restored", zap.String("view", string(SessionApp.View().View)))
	}
	if err := CatalogApp.Bootstrap(ctx); err != nil {
		logger.Warn("err load suppliers", zap.Error(err))
	}
	if err := CartApp.Load(ctx); err != nil {
		logger.Warn("err load cart", zap.Error(err))
	}
	if err := NotificationApp.List(ctx); err != nil {
		logger.Warn("err load notifications", zap.Error(err))
	}
	if SessionApp.View().View == constant.ViewDashboard {
		if err := DashboardApp.Load(ctx); err != nil {
			logger.Warn("err load dashboard", zap.Error(err))
		}
	}

	opts := transport.Options{InternalAPIKey: cfg.Server.InternalAPIKey}
	if cfg.Metrics.Enabled {
		opts.MetricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}
	httpTransport := transport.NewTransport(&transport.RestHandler{
		SessionApp:      SessionApp,
		CatalogApp:      CatalogApp,
		CartApp:         CartApp,
		ReviewApp:       ReviewApp,
		NotificationApp: NotificationApp,
		DashboardApp:    DashboardApp,
	}, opts)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("failed server", zap.Error(err))
	}
}

// openStorage selects the durable key-value store backing the session.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Repository, func()) {
	switch cfg.Storage.Driver {
	case config.StorageRedis:
		if err := redisclient.New(cfg); err != nil {
			logger.Fatal("err connect redis", zap.Error(err))
		}
		return storage.NewRedisRepository(redisclient.Get(), cfg.Storage.Namespace), func() {
			_ = redisclient.Close()
		}

	case config.StorageSQL:
		// Connect to database
		db, err := sqlx.Connect("mysql", cfg.GetDSN())
		if err != nil {
			logger.Fatal("err connect db", zap.Error(err))
		}

		// Set database connection pool settings
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

		repo := storage.NewSQLRepository(db, txRepo.NewTxRepository(db), cfg.Storage.Namespace)
		if err := repo.EnsureSchema(ctx); err != nil {
			logger.Fatal("err create storage table", zap.Error(err))
		}
		return repo, func() {
			_ = db.Close()
		}

	default:
		logger.Warn("using in-memory storage, the session will not survive a restart")
		return storage.NewMemoryRepository(), func() {}
	}
}
