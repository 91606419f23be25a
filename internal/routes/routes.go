// Package routes defines the API routing configuration.
// It wires repositories, services, and handlers, and applies authentication
// middleware per route group.
package routes

import (
	"log/slog"

	"equifund/internal/config"
	"equifund/internal/handlers"
	"equifund/internal/middleware"
	"equifund/internal/repositories"
	"equifund/internal/repositories/cache"
	"equifund/internal/services/investment"
	"equifund/internal/services/notification"
	"equifund/internal/services/settings"
	"equifund/internal/services/wallet"
	"equifund/internal/storage"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, cacheService *cache.CacheService, store storage.ObjectStore, logger *slog.Logger) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	currencyRepo := repositories.NewCurrencyRepository(db)
	gatewayRepo := repositories.NewGatewayRepository(db)
	settingRepo := repositories.NewSettingRepository(db)
	walletRepo := repositories.NewWalletRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	preapprovalRepo := repositories.NewPreapprovalRepository(db)
	investmentRepo := repositories.NewInvestmentRepository(db)

	// Services
	settingsService := settings.NewService(settingRepo, cacheService)
	notifier := notification.NewLogNotifier(logger)
	walletService := wallet.NewService(
		userRepo,
		currencyRepo,
		gatewayRepo,
		walletRepo,
		transactionRepo,
		preapprovalRepo,
		settingsService,
		notifier,
		store,
		wallet.Config{
			DocumentBucket: config.GetEnv("DOCUMENT_BUCKET", wallet.DefaultDocumentBucket),
			AdminEmail:     config.GetEnv("ADMIN_EMAIL", ""),
		},
		logger,
	)
	investmentService := investment.NewService(investmentRepo, currencyRepo, settingsService)

	// Handlers
	walletHandler := handlers.NewWalletHandler(walletService)
	adminHandler := handlers.NewAdminWalletHandler(walletService)
	investmentHandler := handlers.NewInvestmentHandler(investmentService)
	healthHandler := handlers.NewHealthHandler(db, cacheService)

	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api", middleware.Auth)

	walletGroup := api.Group("/wallet")
	walletGroup.Get("/get-user-wallet-list", walletHandler.GetUserWalletList)
	walletGroup.Get("/get-user-wallet-detail", walletHandler.GetUserWalletDetail)
	walletGroup.Post("/add-wallet-topup", walletHandler.AddWalletTopup)
	walletGroup.Get("/wallet-preapproval/:id", walletHandler.GetWalletPreapproval)
	walletGroup.Post("/update-wallet-topup/:id", walletHandler.UpdateWalletTopup)
	walletGroup.Post("/wallet-withdraw", walletHandler.WalletWithdraw)

	adminGroup := walletGroup.Group("/", middleware.AdminOnly)
	adminGroup.Get("/get-all-wallet-transactions/admin", adminHandler.GetAllWalletTransactions)
	adminGroup.Patch("/update-wallet-transaction-status/:id/admin", adminHandler.UpdateWalletTransactionStatus)

	investmentGroup := api.Group("/my-investment")
	investmentGroup.Get("/get-unique-currency", investmentHandler.GetUniqueCurrency)
	investmentGroup.Get("/get-my-investment-list", investmentHandler.GetMyInvestmentList)
}
