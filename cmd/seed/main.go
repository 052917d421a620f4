// Command seed creates the initial admin user and, optionally, a small
// demo dataset.
package main

import (
	"context"
	"flag"
	"time"

	"github.com/shopspring/decimal"

	"stockroom/internal/config"
	"stockroom/internal/core/apperror"
	"stockroom/internal/core/id"
	"stockroom/internal/domain/auth"
	"stockroom/internal/domain/catalogs/category"
	"stockroom/internal/domain/catalogs/product"
	"stockroom/internal/domain/catalogs/supplier"
	"stockroom/internal/infrastructure/storage/postgres"
	"stockroom/internal/infrastructure/storage/postgres/auth_repo"
	"stockroom/internal/infrastructure/storage/postgres/catalog_repo"
	"stockroom/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	adminEmail := flag.String("admin-email", "admin@example.com", "admin user email")
	adminPassword := flag.String("admin-password", "", "admin user password (required)")
	demo := flag.Bool("demo", false, "also insert demo catalog data")
	flag.Parse()

	ctx := context.Background()

	if *adminPassword == "" {
		logger.Fatal(ctx, "admin-password flag is required")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal(ctx, "failed to load config", "error", err)
	}

	pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.Postgres.DSN))
	if err != nil {
		logger.Fatal(ctx, "failed to connect to database", "error", err)
	}
	defer pool.Close()

	txm := postgres.NewTxManager(pool)
	userRepo := auth_repo.NewUserRepo(txm)
	authSvc := auth.NewService(auth.ServiceConfig{Repo: userRepo, TxRunner: txm})

	now := time.Now().UTC()
	admin := &auth.User{
		ID:        id.New(),
		Name:      "Administrator",
		Email:     *adminEmail,
		Role:      auth.RoleAdmin,
		Status:    auth.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := authSvc.CreateUser(ctx, admin, *adminPassword); err != nil {
		if apperror.IsDuplicate(err) {
			logger.Info(ctx, "admin user already exists", "email", *adminEmail)
		} else {
			logger.Fatal(ctx, "failed to create admin user", "error", err)
		}
	} else {
		logger.Info(ctx, "admin user created", "email", *adminEmail)
	}

	if *demo {
		seedDemo(ctx, txm)
	}
}

func seedDemo(ctx context.Context, txm *postgres.TxManager) {
	categoryRepo := catalog_repo.NewCategoryRepo(txm)
	supplierRepo := catalog_repo.NewSupplierRepo(txm)
	productRepo := catalog_repo.NewProductRepo(txm)

	productSvc := product.NewService(productRepo, txm)
	categorySvc := category.NewService(categoryRepo, txm, productSvc)
	supplierSvc := supplier.NewService(supplierRepo, txm)

	fasteners := category.New("Fasteners", "Bolts, nuts and screws")
	lubricants := category.New("Lubricants", "Oils and greases")
	for _, c := range []*category.Category{fasteners, lubricants} {
		if err := categorySvc.Create(ctx, c); err != nil && !apperror.IsDuplicate(err) {
			logger.Fatal(ctx, "failed to seed category", "name", c.Name, "error", err)
		}
	}

	now := time.Now().UTC()
	acme := &supplier.Supplier{
		ID:        id.New(),
		Name:      "Acme Industrial Supply",
		Email:     "sales@acme-supply.example",
		Status:    supplier.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := supplierSvc.Create(ctx, acme); err != nil && !apperror.IsDuplicate(err) {
		logger.Fatal(ctx, "failed to seed supplier", "error", err)
	}

	items := []*product.Product{
		{
			ID:           id.New(),
			Name:         "Hex Bolt M8x40",
			PartNumber:   "HB-M8-40",
			Stock:        500,
			UnitPrice:    decimal.NewFromFloat(0.12),
			ReorderLevel: 100,
			CategoryID:   &fasteners.ID,
			SupplierID:   &acme.ID,
		},
		{
			ID:           id.New(),
			Name:         "Bearing Grease 400g",
			PartNumber:   "BG-400",
			Stock:        24,
			UnitPrice:    decimal.NewFromFloat(6.50),
			ReorderLevel: 30,
			CategoryID:   &lubricants.ID,
			SupplierID:   &acme.ID,
		},
	}
	for _, p := range items {
		p.Status = "Active"
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := productSvc.Create(ctx, p); err != nil && !apperror.IsDuplicate(err) {
			logger.Fatal(ctx, "failed to seed product", "name", p.Name, "error", err)
		}
	}

	logger.Info(ctx, "demo data seeded")
}
