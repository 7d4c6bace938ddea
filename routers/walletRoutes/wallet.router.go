package walletRoutes

import (
	walletController "gim/controllers/wallet"
	"gim/middleware"
	walletValidator "gim/validators/wallet"

	"github.com/gofiber/fiber/v2"
)

func SetupWalletRoutes(app *fiber.App) {
	walletGroup := app.Group("/wallet")

	// User routes
	walletGroup.Get("/balance", middleware.JWTMiddleware, walletController.GetWalletBalance)
	walletGroup.Post("/topup", walletValidator.TopUp(), middleware.JWTMiddleware, walletController.TopUpWallet)
	walletGroup.Get("/history", middleware.JWTMiddleware, walletController.GetWalletHistory)
	walletGroup.Put("/profile", walletValidator.UpdateProfile(), middleware.JWTMiddleware, walletController.UpdateProfile)

	// Admin routes
	adminGroup := walletGroup.Group("/admin")
	adminGroup.Get("/stats", middleware.JWTMiddleware, walletController.GetWalletStats)
}
