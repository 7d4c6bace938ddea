package paymentController

import (
	"errors"
	"log"

	"gim/config"
	"gim/database"
	"gim/middleware"
	"gim/services"
	"gim/utils"

	"github.com/gofiber/fiber/v2"
)

// CreatePayment registers a pending top-up and returns the gateway link.
func CreatePayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedPayment").(*struct {
		Amount int64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := services.NewPaymentService(database.Database.Db).Create(userId, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid amount!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment created!", fiber.Map{
		"paymentId":      payment.ID,
		"gatewayOrderId": payment.GatewayOrderID,
		"paymentUrl":     config.AppConfig.PaymentURL,
		"amount":         payment.Amount,
		"priceRub":       utils.PointsToRubles(payment.Amount).String(),
	})
}

// PaymentWebhook handles the gateway confirmation callback. Only a
// CONFIRMED status settles the payment; anything else is acknowledged
// without side effects.
func PaymentWebhook(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedWebhook").(*struct {
		PaymentID uint   `json:"paymentId"`
		Status    string `json:"status"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	if reqData.Status != "CONFIRMED" {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment not confirmed", nil)
	}

	payment, err := services.NewPaymentService(database.Database.Db).Confirm(reqData.PaymentID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPaymentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Payment not found!", nil)
		case errors.Is(err, services.ErrPaymentAlreadyProcessed):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Payment already processed!", nil)
		default:
			log.Printf("Error confirming payment %d: %v", reqData.PaymentID, err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process payment!", nil)
		}
	}

	go utils.NotifyWebhook(config.AppConfig.WebhookSinkURL, "payment.completed", payment)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment processed successfully", fiber.Map{
		"paymentId": payment.ID,
		"amount":    payment.Amount,
	})
}

// CreateSBPPayment registers a pending top-up and returns an SBP QR code.
func CreateSBPPayment(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedPayment").(*struct {
		Amount int64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	payment, err := services.NewPaymentService(database.Database.Db).Create(userId, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid amount!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment!", nil)
		}
	}

	rubles := utils.PointsToRubles(payment.Amount)
	link := utils.BuildSBPLink(config.AppConfig.SBPBaseURL, rubles)

	qr, err := utils.GenerateQRCodeBase64(link)
	if err != nil {
		log.Printf("Error generating QR code: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate QR code!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SBP payment created!", fiber.Map{
		"paymentId":      payment.ID,
		"gatewayOrderId": payment.GatewayOrderID,
		"paymentUrl":     link,
		"qrCode":         qr,
		"amount":         payment.Amount,
		"rubles":         rubles.String(),
		"recipientCard":  config.AppConfig.RecipientCard,
	})
}
