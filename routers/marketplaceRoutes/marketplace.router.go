package marketplaceRoutes

import (
	marketplaceController "gim/controllers/marketplace"
	"gim/middleware"
	marketplaceValidator "gim/validators/marketplace"

	"github.com/gofiber/fiber/v2"
)

func SetupMarketplaceRoutes(app *fiber.App) {
	itemGroup := app.Group("/items")

	itemGroup.Get("/", marketplaceController.ListItems)
	itemGroup.Post("/", marketplaceValidator.CreateItem(), middleware.JWTMiddleware, marketplaceController.CreateItem)
	itemGroup.Post("/:id/buy", middleware.JWTMiddleware, marketplaceController.BuyItem)
}
