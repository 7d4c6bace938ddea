package walletValidator

import (
	"gim/middleware"

	"github.com/gofiber/fiber/v2"
)

// TopUp validates a direct balance top-up request
func TopUp() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount int64 `json:"amount"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTopUp", reqData)
		return c.Next()
	}
}

// UpdateProfile validates profile display-field updates
func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Email         string `json:"email"`
			Bio           string `json:"bio"`
			ProfileAvatar string `json:"profileAvatar"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedProfile", reqData)
		return c.Next()
	}
}
