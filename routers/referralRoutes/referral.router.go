package referralRoutes

import (
	referralController "gim/controllers/referral"
	"gim/middleware"
	referralValidator "gim/validators/referral"

	"github.com/gofiber/fiber/v2"
)

func SetupReferralRoutes(app *fiber.App) {
	referralGroup := app.Group("/referral")

	referralGroup.Get("/", middleware.JWTMiddleware, referralController.GetReferralStats)
	referralGroup.Post("/apply", referralValidator.Apply(), middleware.JWTMiddleware, referralController.ApplyReferral)
}
