package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	catalogapp "github.com/pegi/backend/internal/application/catalog"
	printingapp "github.com/pegi/backend/internal/application/printing"
	tradeapp "github.com/pegi/backend/internal/application/trade"
	"github.com/pegi/backend/internal/infrastructure/config"
	"github.com/pegi/backend/internal/infrastructure/logger"
	"github.com/pegi/backend/internal/infrastructure/migration"
	"github.com/pegi/backend/internal/infrastructure/payment"
	"github.com/pegi/backend/internal/infrastructure/persistence"
	"github.com/pegi/backend/internal/infrastructure/printing"
	"github.com/pegi/backend/internal/interfaces/http/handler"
	"github.com/pegi/backend/internal/interfaces/http/middleware"
	"github.com/pegi/backend/internal/interfaces/http/router"
)

// migrationsPath is relative to the working directory of the server
const migrationsPath = "migrations"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting Pegi backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Apply pending schema migrations before opening the pool
	migrator, err := migration.NewFromURL(cfg.Database.DSN(), migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Up(); err != nil {
		log.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		log.Warn("Error closing migrator", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	// Repositories
	bookRepo := persistence.NewGormBookRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)

	// Application services
	bookService := catalogapp.NewBookService(bookRepo, log)
	orderService := tradeapp.NewOrderService(orderRepo, tradeapp.Config{
		VATRate:      decimal.NewFromFloat(cfg.Store.VATRate),
		FlatShipping: decimal.NewFromFloat(cfg.Store.FlatShipping),
	}, log)

	templateEngine, err := printing.NewTemplateEngine(cfg.Store.Currency)
	if err != nil {
		log.Fatal("Failed to initialize invoice templates", zap.Error(err))
	}

	var pdfRenderer printing.PDFRenderer
	if cfg.Printing.Stub {
		pdfRenderer = printing.NewStubRenderer()
		log.Warn("PDF rendering uses the stub renderer, invoices will not reflect the template")
	} else {
		pdfRenderer, err = printing.NewChromedpRenderer(&printing.ChromedpConfig{
			DefaultTimeout: cfg.Printing.RenderTimeout,
			RemoteURL:      cfg.Printing.ChromeRemoteURL,
			NoSandbox:      cfg.Printing.NoSandbox,
			Logger:         log,
		})
		if err != nil {
			log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
		}
	}
	defer func() {
		if err := pdfRenderer.Close(); err != nil {
			log.Error("Error closing PDF renderer", zap.Error(err))
		}
	}()

	invoiceService := printingapp.NewInvoiceService(orderRepo, templateEngine, pdfRenderer, printing.SellerData{
		Name:     cfg.Seller.Name,
		Address:  cfg.Seller.Address,
		Email:    cfg.Seller.Email,
		Phone:    cfg.Seller.Phone,
		FiscalID: cfg.Seller.FiscalID,
	}, log)

	// Card payments settle out of band when no Stripe secret is configured
	stripeProvider := payment.NewStripeProvider(cfg.Payment.StripeSecret, log)
	log.Info("payment provider ready", zap.Bool("stripe_enabled", stripeProvider.Enabled()))

	// Seed the catalog on first start
	seeded, err := bookService.Seed(context.Background())
	if err != nil {
		log.Fatal("Failed to seed catalog", zap.Error(err))
	}
	if seeded > 0 {
		log.Info("Catalog seeded", zap.Int("books", seeded))
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORSAllowOrigins,
		AllowMethods:     cfg.HTTP.CORSAllowMethods,
		AllowHeaders:     cfg.HTTP.CORSAllowHeaders,
		ExposeHeaders:    []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	handler.NewSystemHandler().RegisterRoutes(engine)

	router.NewRouter(engine).
		Register(handler.NewBookHandler(bookService)).
		Register(handler.NewOrderHandler(orderService)).
		Register(handler.NewAdminHandler(orderService, invoiceService)).
		Setup()

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
