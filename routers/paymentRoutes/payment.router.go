package paymentRoutes

import (
	paymentController "gim/controllers/payment"
	"gim/middleware"
	paymentValidator "gim/validators/payment"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/create", paymentValidator.Create(), middleware.JWTMiddleware, paymentController.CreatePayment)
	paymentGroup.Post("/sbp", paymentValidator.Create(), middleware.JWTMiddleware, paymentController.CreateSBPPayment)

	// Called by the gateway, not by users; the gateway does not carry our JWT.
	paymentGroup.Post("/webhook", paymentValidator.Webhook(), paymentController.PaymentWebhook)
}
