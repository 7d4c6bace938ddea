package withdrawRoutes

import (
	withdrawController "gim/controllers/withdraw"
	"gim/middleware"
	withdrawValidator "gim/validators/withdraw"

	"github.com/gofiber/fiber/v2"
)

func SetupWithdrawRoutes(app *fiber.App) {
	withdrawGroup := app.Group("/withdraw")

	withdrawGroup.Post("/", withdrawValidator.Request(), middleware.JWTMiddleware, withdrawController.RequestWithdrawal)
	withdrawGroup.Get("/", middleware.JWTMiddleware, withdrawController.GetWithdrawals)

	// Admin routes
	adminGroup := withdrawGroup.Group("/admin")
	adminGroup.Post("/process", withdrawValidator.Process(), middleware.JWTMiddleware, withdrawController.ProcessWithdrawal)
}
