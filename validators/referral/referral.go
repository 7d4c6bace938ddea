package referralValidator

import (
	"strings"

	"gim/middleware"

	"github.com/gofiber/fiber/v2"
)

// Apply validates a referral application request
func Apply() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			ReferralCode string `json:"referralCode"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		reqData.ReferralCode = strings.ToUpper(strings.TrimSpace(reqData.ReferralCode))

		errors := make(map[string]string)

		if reqData.ReferralCode == "" {
			errors["referralCode"] = "Referral code is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedReferral", reqData)
		return c.Next()
	}
}
