// Command server runs the inventory HTTP API.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"stockroom/internal/config"
	"stockroom/internal/domain/auth"
	"stockroom/internal/domain/catalogs/category"
	"stockroom/internal/domain/catalogs/customer"
	"stockroom/internal/domain/catalogs/product"
	"stockroom/internal/domain/catalogs/supplier"
	"stockroom/internal/domain/catalogs/warehouse"
	"stockroom/internal/domain/documents/incoming"
	"stockroom/internal/domain/documents/outgoing"
	"stockroom/internal/domain/reports"
	"stockroom/internal/domain/requests"
	v1 "stockroom/internal/infrastructure/http/v1"
	"stockroom/internal/infrastructure/http/v1/handlers"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/auth_repo"
	"stockroom/internal/infrastructure/storage/postgres/catalog_repo"
	"stockroom/internal/infrastructure/storage/postgres/document_repo"
	"stockroom/internal/infrastructure/storage/postgres/report_repo"
	"stockroom/internal/infrastructure/storage/postgres/request_repo"
	"stockroom/migrations"
	"stockroom/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(ctx, "failed to load config", "error", err, "path", *configPath)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.App.Env == "development",
	})
	if err != nil {
		logger.Fatal(ctx, "failed to build logger", "error", err)
	}
	defer func() { _ = log.Sync() }()
	ctx = logger.WithLogger(ctx, log)

	poolCfg := postgres.DefaultPoolConfig(cfg.Postgres.DSN)
	if cfg.Postgres.MaxConns > 0 {
		poolCfg.MaxConns = cfg.Postgres.MaxConns
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := migrate(ctx, cfg.Postgres.DSN); err != nil {
		logger.Fatal(ctx, "failed to run migrations", "error", err)
	}

	txm := postgres.NewTxManager(pool)

	categoryRepo := catalog_repo.NewCategoryRepo(txm)
	supplierRepo := catalog_repo.NewSupplierRepo(txm)
	customerRepo := catalog_repo.NewCustomerRepo(txm)
	warehouseRepo := catalog_repo.NewWarehouseRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)
	incomingRepo := document_repo.NewIncomingRepo(txm)
	outgoingRepo := document_repo.NewOutgoingRepo(txm)
	requestRepo := request_repo.NewRequestRepo(txm)
	reportRepo := report_repo.NewReportRepo(txm)
	userRepo := auth_repo.NewUserRepo(txm)

	productSvc := product.NewService(productRepo, txm)
	categorySvc := category.NewService(categoryRepo, txm, productSvc)
	supplierSvc := supplier.NewService(supplierRepo, txm)
	customerSvc := customer.NewService(customerRepo, txm)
	warehouseSvc := warehouse.NewService(warehouseRepo, txm)
	incomingSvc := incoming.NewService(incomingRepo, productRepo, txm)
	outgoingSvc := outgoing.NewService(outgoingRepo, productRepo, txm)
	requestSvc := requests.NewService(requestRepo, txm)
	reportSvc := reports.NewService(reportRepo)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL)
	authSvc := auth.NewService(auth.ServiceConfig{
		Repo:             userRepo,
		TxRunner:         txm,
		JWT:              jwtSvc,
		MaxLoginAttempts: cfg.Auth.MaxLoginAttempts,
		LockDuration:     cfg.Auth.LockDuration,
	})

	router := v1.NewRouter(v1.RouterConfig{
		Log:            log,
		JWT:            jwtSvc,
		MetricsEnabled: cfg.Metrics.Enabled,

		Health:     handlers.NewHealthHandler(pool),
		Auth:       handlers.NewAuthHandler(authSvc),
		Users:      handlers.NewUserHandler(authSvc),
		Categories: handlers.NewCategoryHandler(categorySvc),
		Suppliers:  handlers.NewSupplierHandler(supplierSvc),
		Customers:  handlers.NewCustomerHandler(customerSvc),
		Warehouses: handlers.NewWarehouseHandler(warehouseSvc),
		Products:   handlers.NewProductHandler(productSvc),
		Incoming:   handlers.NewIncomingHandler(incomingSvc),
		Outgoing:   handlers.NewOutgoingHandler(outgoingSvc),
		Requests:   handlers.NewRequestHandler(requestSvc),
		Dashboard:  handlers.NewDashboardHandler(reportSvc),
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(ctx, "http server listening", "addr", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal(ctx, "http server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(ctx, "graceful shutdown failed", "error", err)
	}
}

// migrate applies pending goose migrations over a throwaway
// database/sql connection.
func migrate(ctx context.Context, dsn string) error {
	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}
