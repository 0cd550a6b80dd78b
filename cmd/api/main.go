package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/application/service"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/config"
	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/database"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/infrastructure/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/handler"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/middleware"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/routes"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/printer"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

const idempotencySweepInterval = time.Hour

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgresDB(&cfg.Database, cfg.App.Debug)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Warning: failed to close database: %v", err)
		}
	}()

	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	querier := database.NewQuerier(db)
	loc := cfg.Report.Location()
	tz := loc.String()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	salesRepo := repository.NewSalesRepository(querier, tz)
	dashboardRepo := repository.NewDashboardRepository(querier, tz)
	inventoryRepo := repository.NewInventoryRepository(querier)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	salesService := service.NewSalesService(salesRepo, loc)
	reportService := service.NewReportService(salesRepo, loc)
	dashboardService := service.NewDashboardService(dashboardRepo, loc)
	inventoryService := service.NewInventoryService(inventoryRepo, cfg.Report.VoidProcedure, loc)
	productService := service.NewProductService(productRepo)
	calendarService := service.NewCalendarService()

	thermalPrinter, err := printer.New(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(
		thermalPrinter,
		salesRepo,
		reportService,
		cfg.Printer.StoreName,
		cfg.Printer.StoreFooter,
		loc,
	)

	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Sales:     handler.NewSalesHandler(salesService),
		Report:    handler.NewReportHandler(reportService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Inventory: handler.NewInventoryHandler(inventoryService),
		Product:   handler.NewProductHandler(productService),
		Calendar:  handler.NewCalendarHandler(calendarService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	rateLimiter := middleware.NewUserRateLimiter(middleware.NewRateLimiterConfig(
		cfg.RateLimit.Requests,
		time.Duration(cfg.RateLimit.Duration)*time.Second,
	))
	defer rateLimiter.Close()

	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
		RateLimiter:     rateLimiter,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go sweepIdempotencyKeys(ctx, idempotencyRepo)

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s, report timezone: %s", cfg.App.Env, tz)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Warning: graceful shutdown failed: %v", err)
	}
}

// sweepIdempotencyKeys deletes expired idempotency keys until ctx is done.
func sweepIdempotencyKeys(ctx context.Context, repo domainRepo.IdempotencyRepository) {
	ticker := time.NewTicker(idempotencySweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := repo.DeleteExpired(ctx, now)
			if err != nil {
				log.Printf("Warning: failed to delete expired idempotency keys: %v", err)
				continue
			}
			if n > 0 {
				log.Printf("Deleted %d expired idempotency keys", n)
			}
		}
	}
}
