package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/swaggo/swag"

	"github.com/chukwumela909/Web-App-sub001/docs"
	appanalytics "github.com/chukwumela909/Web-App-sub001/internal/application/analytics"
	"github.com/chukwumela909/Web-App-sub001/internal/application/auth"
	"github.com/chukwumela909/Web-App-sub001/internal/application/inventory"
	"github.com/chukwumela909/Web-App-sub001/internal/application/ports"
	"github.com/chukwumela909/Web-App-sub001/internal/application/sales"
	"github.com/chukwumela909/Web-App-sub001/internal/application/staff"
	"github.com/chukwumela909/Web-App-sub001/internal/application/usecase"
	"github.com/chukwumela909/Web-App-sub001/internal/domain/repository"
	"github.com/chukwumela909/Web-App-sub001/internal/infrastructure/cache"
	inframongo "github.com/chukwumela909/Web-App-sub001/internal/infrastructure/mongo"
	infrapdf "github.com/chukwumela909/Web-App-sub001/internal/infrastructure/pdf"
	"github.com/chukwumela909/Web-App-sub001/internal/infrastructure/postgres"
	httpRouter "github.com/chukwumela909/Web-App-sub001/internal/interfaces/http"
	"github.com/chukwumela909/Web-App-sub001/pkg/config"
	"github.com/chukwumela909/Web-App-sub001/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:        cfg.App.Env,
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.Migrate {
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migración del esquema")
		}
		log.Info().Msg("esquema aplicado")
	}

	// Bitácora de personal en MongoDB (opcional)
	var activityRepo repository.StaffActivityRepository
	if cfg.Mongo.Enabled() {
		client, db, err := inframongo.Connect(ctx, cfg.Mongo)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a MongoDB")
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		activityRepo = inframongo.NewActivityRepository(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("bitácora de personal en MongoDB")
	}

	// Caché de dashboards en Redis (opcional)
	var dashCache ports.Cache = cache.Noop{}
	if cfg.Redis.Enabled() {
		rc, err := cache.NewRedis(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer rc.Close()
		dashCache = rc
		log.Info().Str("addr", cfg.Redis.Addr).Dur("ttl", cfg.Redis.TTL).Msg("caché de dashboards en Redis")
	}

	userRepo := postgres.NewUserRepository(pool)
	branchRepo := postgres.NewBranchRepository(pool)
	staffRepo := postgres.NewStaffRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	orderRepo := postgres.NewSupplierOrderRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	transferRepo := postgres.NewTransferRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	legacyRepo := postgres.NewLegacySaleRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	debtorRepo := postgres.NewDebtorRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	activity := staff.NewActivityLogger(activityRepo, log)

	stockUC := inventory.NewStockUseCase(inventory.Deps{
		TxRunner:    txRunner,
		Products:    productRepo,
		Branches:    branchRepo,
		Suppliers:   supplierRepo,
		Stock:       stockRepo,
		Movements:   movementRepo,
		Transfers:   transferRepo,
		Cache:       dashCache,
		Activity:    activity,
		Logger:      log,
		StrictSales: cfg.Inventory.StrictSales,
	})
	saleUC := sales.NewSaleUseCase(sales.Deps{
		TxRunner: txRunner,
		Stock:    stockUC,
		Products: productRepo,
		Branches: branchRepo,
		Sales:    saleRepo,
		Legacy:   legacyRepo,
		Users:    userRepo,
		Receipts: infrapdf.NewReceiptGenerator(),
		Activity: activity,
		Logger:   log,
	})
	dashboardUC := appanalytics.NewDashboardUseCase(appanalytics.Deps{
		Branches:  branchRepo,
		Stock:     stockRepo,
		Movements: movementRepo,
		Sales:     saleRepo,
		Suppliers: supplierRepo,
		Orders:    orderRepo,
		Analytics: analyticsRepo,
		Cache:     dashCache,
		Logger:    log,
	})
	authUC := auth.NewAuthUseCase(userRepo, staffRepo, branchRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario POS API",
	}))

	// Documento OpenAPI registrado en swag (mismo contenido que docs/swagger.json)
	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return err
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		UserUC:        usecase.NewUserUseCase(userRepo, staffRepo),
		BranchUC:      usecase.NewBranchUseCase(branchRepo, dashCache, activity),
		StaffUC:       staff.NewStaffUseCase(staffRepo, branchRepo, activityRepo, activity),
		SupplierUC:    usecase.NewSupplierUseCase(supplierRepo, orderRepo, activity),
		ProductUC:     usecase.NewProductUseCase(productRepo, stockRepo, branchRepo, stockUC, activity),
		ExpenseUC:     usecase.NewExpenseUseCase(expenseRepo, branchRepo, activity),
		DebtorUC:      usecase.NewDebtorUseCase(debtorRepo, activity),
		ReportUC:      usecase.NewReportUseCase(saleRepo, expenseRepo, analyticsRepo),
		StockUC:       stockUC,
		Replenishment: inventory.NewReplenishmentUseCase(stockRepo, productRepo, analyticsRepo),
		SaleUC:        saleUC,
		DashboardUC:   dashboardUC,
		StaffRepo:     staffRepo,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
