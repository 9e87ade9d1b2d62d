package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/stockify/stockify-api/internal/application/service"
	"github.com/stockify/stockify-api/internal/config"
	"github.com/stockify/stockify-api/internal/infrastructure/cache"
	"github.com/stockify/stockify-api/internal/infrastructure/database"
	"github.com/stockify/stockify-api/internal/infrastructure/events"
	"github.com/stockify/stockify-api/internal/infrastructure/repository"
	"github.com/stockify/stockify-api/internal/presentation/http/handler"
	"github.com/stockify/stockify-api/internal/presentation/http/routes"
	"github.com/stockify/stockify-api/pkg/email"
	"github.com/stockify/stockify-api/pkg/logger"
	"github.com/stockify/stockify-api/pkg/oauth"
	"github.com/stockify/stockify-api/pkg/printer"
	"github.com/stockify/stockify-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.New(cfg.Log.Level, cfg.App.Env != "production")

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Token blacklist: Redis when reachable, in-memory otherwise
	var blacklist cache.TokenBlacklist
	redisBlacklist, err := cache.NewRedisTokenBlacklist(&cfg.Redis)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, using in-memory token blacklist")
		blacklist = cache.NewInMemoryTokenBlacklist()
	} else {
		blacklist = redisBlacklist
	}

	// Event publisher for sale and return events
	var publisher events.Publisher
	if cfg.Kafka.Enabled {
		publisher = events.NewKafkaPublisher(&cfg.Kafka, log)
	} else {
		publisher = events.NopPublisher{}
	}
	defer publisher.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	branchRepo := repository.NewBranchRepository(db)
	productRepo := repository.NewProductRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	supplierRepo := repository.NewSupplierRepository(db)
	taxRepo := repository.NewTaxRepository(db)
	stockEntryRepo := repository.NewStockEntryRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	orderItemRepo := repository.NewOrderItemRepository(db)
	returnRepo := repository.NewReturnRepository(db)
	returnItemRepo := repository.NewReturnItemRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.App.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.GoogleOAuth.ClientID,
		ClientSecret:       cfg.GoogleOAuth.ClientSecret,
		RedirectURL:        cfg.GoogleOAuth.RedirectURL,
		FrontendSuccessURL: cfg.GoogleOAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.GoogleOAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, branchRepo, passwordResetRepo, jwtManager, blacklist, emailService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo, branchRepo)
	productService := service.NewProductService(productRepo, categoryRepo, supplierRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	supplierService := service.NewSupplierService(supplierRepo)
	taxService := service.NewTaxService(taxRepo)
	branchService := service.NewBranchService(branchRepo, userRepo)
	stockService := service.NewStockService(stockEntryRepo, productRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, publisher)
	returnService := service.NewReturnService(returnRepo, returnItemRepo, orderRepo, productRepo, publisher)
	dashboardService := service.NewDashboardService(orderRepo, productRepo)
	reportService := service.NewReportService(orderRepo, returnRepo, productRepo)
	settingsService := service.NewSettingsService(settingsRepo, orderRepo, userRepo)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	defer thermalPrinter.Close()
	printerService := service.NewPrinterService(thermalPrinter, settingsService, cfg.Printer.Type, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleOAuthService),
		Product:   handler.NewProductHandler(productService),
		Category:  handler.NewCategoryHandler(categoryService),
		Supplier:  handler.NewSupplierHandler(supplierService),
		Tax:       handler.NewTaxHandler(taxService),
		Branch:    handler.NewBranchHandler(branchService),
		Stock:     handler.NewStockHandler(stockService),
		Order:     handler.NewOrderHandler(orderService),
		Return:    handler.NewReturnHandler(returnService),
		User:      handler.NewUserHandler(userService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Report:    handler.NewReportHandler(reportService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Printer:   handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Blacklist:       blacklist,
		Cfg:             cfg,
		Logger:          log,
		IdempotencyRepo: idempotencyRepo,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Info().
			Str("service", cfg.App.Name).
			Str("env", cfg.App.Env).
			Str("port", port).
			Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
