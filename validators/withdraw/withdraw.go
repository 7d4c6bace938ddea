package withdrawValidator

import (
	"gim/middleware"

	"github.com/gofiber/fiber/v2"
)

// Request validates a withdrawal request
func Request() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount         int64  `json:"amount"`
			PaymentMethod  string `json:"paymentMethod"`
			PaymentDetails string `json:"paymentDetails"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}
		if reqData.PaymentDetails == "" {
			errors["paymentDetails"] = "Payment details are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedWithdrawal", reqData)
		return c.Next()
	}
}

// Process validates an admin settle/reject request
func Process() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			WithdrawalID uint `json:"withdrawalId"`
			Approve      bool `json:"approve"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.WithdrawalID == 0 {
			errors["withdrawalId"] = "Withdrawal ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProcess", reqData)
		return c.Next()
	}
}
