package withdrawController

import (
	"errors"

	"gim/config"
	"gim/database"
	"gim/middleware"
	"gim/models"
	"gim/services"
	"gim/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestWithdrawal debits the balance and queues a pending payout.
func RequestWithdrawal(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedWithdrawal").(*struct {
		Amount         int64  `json:"amount"`
		PaymentMethod  string `json:"paymentMethod"`
		PaymentDetails string `json:"paymentDetails"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	withdrawal, err := services.NewWithdrawalService(database.Database.Db).
		Request(userId, reqData.Amount, reqData.PaymentMethod, reqData.PaymentDetails)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create withdrawal!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal requested!", withdrawal)
}

// GetWithdrawals returns the user's recent withdrawal requests.
func GetWithdrawals(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	withdrawals, err := services.NewWithdrawalService(database.Database.Db).List(userId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch withdrawals!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawals fetched!", fiber.Map{
		"withdrawals": withdrawals,
	})
}

// ProcessWithdrawal settles a pending withdrawal (Admin only). Rejection
// refunds the debited amount.
func ProcessWithdrawal(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var admin models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, "ADMIN").First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	reqData, ok := c.Locals("validatedProcess").(*struct {
		WithdrawalID uint `json:"withdrawalId"`
		Approve      bool `json:"approve"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	withdrawal, err := services.NewWithdrawalService(database.Database.Db).
		Process(reqData.WithdrawalID, reqData.Approve)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrWithdrawalNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Withdrawal not found!", nil)
		case errors.Is(err, services.ErrWithdrawalAlreadyProcessed):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Withdrawal already processed!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to process withdrawal!", nil)
		}
	}

	go utils.NotifyWebhook(config.AppConfig.WebhookSinkURL, "withdrawal.processed", withdrawal)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Withdrawal processed!", withdrawal)
}
