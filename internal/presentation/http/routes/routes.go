package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/stockify/stockify-api/internal/config"
	"github.com/stockify/stockify-api/internal/domain/entity"
	domainRepo "github.com/stockify/stockify-api/internal/domain/repository"
	"github.com/stockify/stockify-api/internal/infrastructure/cache"
	"github.com/stockify/stockify-api/internal/presentation/http/handler"
	"github.com/stockify/stockify-api/internal/presentation/http/middleware"
	"github.com/stockify/stockify-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Category  *handler.CategoryHandler
	Supplier  *handler.SupplierHandler
	Tax       *handler.TaxHandler
	Branch    *handler.BranchHandler
	Stock     *handler.StockHandler
	Order     *handler.OrderHandler
	Return    *handler.ReturnHandler
	User      *handler.UserHandler
	Dashboard *handler.DashboardHandler
	Report    *handler.ReportHandler
	Settings  *handler.SettingsHandler
	Printer   *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Blacklist       cache.TokenBlacklist
	Cfg             *config.Config
	Logger          zerolog.Logger
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication + branch scoping required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager, deps.Blacklist))
		protected.Use(middleware.BranchMiddleware())

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.Me)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Dashboard
	protected.GET("/dashboard",
		middleware.RequirePermission("dashboard", entity.ActionRead), h.Dashboard.GetStats)

	registerProductRoutes(protected, h)
	registerStockRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerReturnRoutes(protected, h, deps)
	registerCategoryRoutes(protected, h)
	registerSupplierRoutes(protected, h)
	registerBranchRoutes(protected, h)
	registerTaxRoutes(protected, h)
	registerUserRoutes(protected, h)
	registerRoleRoutes(protected, h)
	registerReportRoutes(protected, h)
	registerSettingsRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", middleware.RequirePermission("products", entity.ActionRead), h.Product.List)
		products.POST("", middleware.RequirePermission("products", entity.ActionCreate), h.Product.Create)
		products.POST("/import", middleware.RequirePermission("products", entity.ActionCreate), h.Product.Import)
		products.GET("/low-stock", middleware.RequirePermission("products", entity.ActionRead), h.Product.GetLowStock)
		products.GET("/:slug", middleware.RequirePermission("products", entity.ActionRead), h.Product.Get)
		products.PUT("/:slug", middleware.RequirePermission("products", entity.ActionUpdate), h.Product.Update)
		products.DELETE("/:slug", middleware.RequirePermission("products", entity.ActionDelete), h.Product.Delete)
	}
}

func registerStockRoutes(protected *gin.RouterGroup, h *Handlers) {
	stock := protected.Group("/stock")
	{
		stock.GET("", middleware.RequirePermission("stock", entity.ActionRead), h.Stock.List)
		stock.POST("", middleware.RequirePermission("stock", entity.ActionCreate), h.Stock.Adjust)
		stock.GET("/:id", middleware.RequirePermission("stock", entity.ActionRead), h.Stock.Get)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	{
		orders.GET("", middleware.RequirePermission("orders", entity.ActionRead), h.Order.List)
		// Order creation uses idempotency middleware to prevent duplicates
		orders.POST("",
			middleware.RequirePermission("orders", entity.ActionCreate),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Order.Create)
		orders.GET("/due", middleware.RequirePermission("orders", entity.ActionRead), h.Order.GetDue)
		orders.GET("/invoice/:invoice_no", middleware.RequirePermission("orders", entity.ActionRead), h.Order.GetByInvoice)
		orders.GET("/:id", middleware.RequirePermission("orders", entity.ActionRead), h.Order.Get)
		orders.PUT("/:id", middleware.RequirePermission("orders", entity.ActionUpdate), h.Order.Update)
		orders.POST("/:id/pay", middleware.RequirePermission("orders", entity.ActionUpdate), h.Order.PayDue)
		orders.GET("/:id/returns", middleware.RequirePermission("returns", entity.ActionRead), h.Return.ListForOrder)
		orders.GET("/:id/receipt", middleware.RequirePermission("orders", entity.ActionRead), h.Settings.GetOrderReceipt)
		orders.DELETE("/:id", middleware.RequirePermission("orders", entity.ActionDelete), h.Order.Delete)
	}
}

func registerReturnRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	returns := protected.Group("/returns")
	{
		returns.GET("", middleware.RequirePermission("returns", entity.ActionRead), h.Return.List)
		returns.POST("",
			middleware.RequirePermission("returns", entity.ActionCreate),
			middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo}),
			h.Return.Create)
		returns.GET("/:id", middleware.RequirePermission("returns", entity.ActionRead), h.Return.Get)
	}
}

func registerCategoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	categories := protected.Group("/categories")
	{
		categories.GET("", middleware.RequirePermission("categories", entity.ActionRead), h.Category.List)
		categories.POST("", middleware.RequirePermission("categories", entity.ActionCreate), h.Category.Create)
		categories.GET("/:slug", middleware.RequirePermission("categories", entity.ActionRead), h.Category.Get)
		categories.PUT("/:slug", middleware.RequirePermission("categories", entity.ActionUpdate), h.Category.Update)
		categories.DELETE("/:slug", middleware.RequirePermission("categories", entity.ActionDelete), h.Category.Delete)
	}
}

func registerSupplierRoutes(protected *gin.RouterGroup, h *Handlers) {
	suppliers := protected.Group("/suppliers")
	{
		suppliers.GET("", middleware.RequirePermission("suppliers", entity.ActionRead), h.Supplier.List)
		suppliers.POST("", middleware.RequirePermission("suppliers", entity.ActionCreate), h.Supplier.Create)
		suppliers.GET("/:id", middleware.RequirePermission("suppliers", entity.ActionRead), h.Supplier.Get)
		suppliers.PUT("/:id", middleware.RequirePermission("suppliers", entity.ActionUpdate), h.Supplier.Update)
		suppliers.DELETE("/:id", middleware.RequirePermission("suppliers", entity.ActionDelete), h.Supplier.Delete)
	}
}

func registerBranchRoutes(protected *gin.RouterGroup, h *Handlers) {
	branches := protected.Group("/branches")
	{
		branches.GET("", middleware.RequirePermission("branches", entity.ActionRead), h.Branch.List)
		branches.GET("/:slug", middleware.RequirePermission("branches", entity.ActionRead), h.Branch.Get)
	}

	// Branches are the organizational units; changing them reaches across
	// every branch scope, so mutations need the super-admin role on top
	// of the branches permission.
	admin := branches.Group("", middleware.RequireRole("super-admin"))
	{
		admin.POST("", middleware.RequirePermission("branches", entity.ActionCreate), h.Branch.Create)
		admin.POST("/assign", middleware.RequirePermission("branches", entity.ActionUpdate), h.Branch.AssignUser)
		admin.PUT("/:slug", middleware.RequirePermission("branches", entity.ActionUpdate), h.Branch.Update)
		admin.DELETE("/:slug", middleware.RequirePermission("branches", entity.ActionDelete), h.Branch.Delete)
	}
}

func registerTaxRoutes(protected *gin.RouterGroup, h *Handlers) {
	taxes := protected.Group("/taxes")
	{
		taxes.GET("", middleware.RequirePermission("taxes", entity.ActionRead), h.Tax.List)
		taxes.POST("", middleware.RequirePermission("taxes", entity.ActionCreate), h.Tax.Create)
		taxes.GET("/:id", middleware.RequirePermission("taxes", entity.ActionRead), h.Tax.Get)
		taxes.PUT("/:id", middleware.RequirePermission("taxes", entity.ActionUpdate), h.Tax.Update)
		taxes.DELETE("/:id", middleware.RequirePermission("taxes", entity.ActionDelete), h.Tax.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	{
		users.GET("", middleware.RequirePermission("users", entity.ActionRead), h.User.List)
		users.POST("", middleware.RequirePermission("users", entity.ActionCreate), h.User.Create)
		users.GET("/:id", middleware.RequirePermission("users", entity.ActionRead), h.User.Get)
		users.PUT("/:id", middleware.RequirePermission("users", entity.ActionUpdate), h.User.Update)
		users.PUT("/:id/roles", middleware.RequirePermission("roles", entity.ActionUpdate), h.User.UpdateRoles)
		users.DELETE("/:id", middleware.RequirePermission("users", entity.ActionDelete), h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	{
		roles.GET("", middleware.RequirePermission("roles", entity.ActionRead), h.User.ListRoles)
		roles.POST("", middleware.RequirePermission("roles", entity.ActionCreate), h.User.CreateRole)
		roles.GET("/:id", middleware.RequirePermission("roles", entity.ActionRead), h.User.GetRole)
		roles.PUT("/:id/permissions", middleware.RequirePermission("roles", entity.ActionUpdate), h.User.UpdateRolePermissions)
		roles.DELETE("/:id", middleware.RequirePermission("roles", entity.ActionDelete), h.User.DeleteRole)
	}

	protected.GET("/permissions",
		middleware.RequirePermission("roles", entity.ActionRead), h.User.ListPermissions)
}

func registerReportRoutes(protected *gin.RouterGroup, h *Handlers) {
	reports := protected.Group("/reports")
	reports.Use(middleware.RequirePermission("reports", entity.ActionRead))
	{
		reports.GET("/sales", h.Report.Sales)
		reports.GET("/vendors", h.Report.Vendors)
		reports.GET("/returns", h.Report.Returns)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("", middleware.RequirePermission("settings", entity.ActionRead), h.Settings.Get)
		settings.PUT("", middleware.RequirePermission("settings", entity.ActionUpdate), h.Settings.Update)
		settings.GET("/printer", middleware.RequirePermission("settings", entity.ActionRead), h.Printer.Status)
		settings.POST("/printer/test", middleware.RequirePermission("settings", entity.ActionUpdate), h.Printer.TestPrint)
		settings.POST("/printer/print", middleware.RequirePermission("orders", entity.ActionRead), h.Printer.PrintReceipt)
	}
}
