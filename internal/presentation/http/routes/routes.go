package routes

import (
	"net/http"
	"time"

	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/config"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/entity"
	domainRepo "github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/domain/repository"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/handler"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/internal/presentation/http/middleware"
	"github.com/AshishD0d/omnipay-solution-new-inventory-backend/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Sales     *handler.SalesHandler
	Report    *handler.ReportHandler
	Dashboard *handler.DashboardHandler
	Inventory *handler.InventoryHandler
	Product   *handler.ProductHandler
	Calendar  *handler.CalendarHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
	// RateLimiter is built from Cfg.RateLimit when nil.
	RateLimiter *middleware.UserRateLimiter
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/auth/login", h.Auth.Login)

		rateLimiter := deps.RateLimiter
		if rateLimiter == nil {
			rateLimiter = middleware.NewUserRateLimiter(middleware.NewRateLimiterConfig(
				deps.Cfg.RateLimit.Requests,
				time.Duration(deps.Cfg.RateLimit.Duration)*time.Second,
			))
		}

		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/profile", h.Auth.GetProfile)

	registerSalesRoutes(protected, h)

	dashboard := protected.Group("/dashboard")
	{
		dashboard.GET("/live-sales-trend", h.Dashboard.LiveSalesTrend)
		dashboard.GET("/top-selling-items", h.Dashboard.TopSellingItems)
	}

	registerInventoryRoutes(protected, h, deps)
	registerProductRoutes(protected, h)

	calendar := protected.Group("/calendar")
	{
		calendar.GET("/months", h.Calendar.Months)
		calendar.GET("/years", h.Calendar.Years)
	}

	printer := protected.Group("/printer")
	{
		printer.GET("/status", h.Printer.GetStatus)
		printer.POST("/test", h.Printer.TestPrint)
		printer.POST("/flash-report", h.Printer.PrintFlashReport)
		printer.POST("/invoices/:code", h.Printer.PrintInvoice)
	}
}

func registerSalesRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("/today-yesterday", h.Sales.TodayYesterday)
		sales.POST("/history", h.Sales.History)
		sales.POST("/download", h.Sales.Download)
		sales.GET("/active-tax", h.Sales.ActiveSalesTax)
		sales.POST("/item-history", h.Sales.ItemHistory)

		sales.POST("/flash-report", h.Report.Flash)
		sales.POST("/flash-report/download", h.Report.FlashDownload)
		sales.POST("/hourly-report", h.Report.Hourly)
		sales.POST("/hourly-report/download", h.Report.HourlyDownload)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/dropped-items", h.Inventory.DroppedItems)
		inventory.GET("/total-count", h.Inventory.TotalCount)
		inventory.POST("/tracking", h.Inventory.Tracking)
		inventory.POST("/void-invoice",
			middleware.RequireRole(entity.RoleAdmin, entity.RoleManager),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Inventory.VoidInvoice,
		)
	}
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		// static paths before :id
		products.GET("/names", h.Product.Names)
		products.GET("/categories", h.Product.Categories)
		products.GET("/categories/:id/products", h.Product.CategoryProducts)
		products.GET("/report", h.Product.Report)
		products.GET("/:id", h.Product.Get)

		write := products.Group("", middleware.RequireRole(entity.RoleAdmin, entity.RoleManager))
		write.POST("", h.Product.Create)
		write.PUT("/:id", h.Product.Update)
		write.DELETE("/:id", h.Product.Delete)
	}
}
