package referralController

import (
	"errors"

	"gim/config"
	"gim/database"
	"gim/middleware"
	"gim/services"

	"github.com/gofiber/fiber/v2"
)

// GetReferralStats returns the user's code, totals and recent referrals.
func GetReferralStats(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	stats, err := services.NewReferralService(database.Database.Db, config.AppConfig.ReferralBonus).Stats(userId)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch referral stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referral stats fetched!", stats)
}

// ApplyReferral credits the referrer's bonus for the authenticated new user.
func ApplyReferral(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedReferral").(*struct {
		ReferralCode string `json:"referralCode"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	bonus, err := services.NewReferralService(database.Database.Db, config.AppConfig.ReferralBonus).
		Apply(reqData.ReferralCode, userId)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidReferralCode):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Invalid referral code!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		case errors.Is(err, services.ErrReferralAlreadyApplied):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Referral already applied!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to apply referral!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Referral applied!", fiber.Map{
		"bonus": bonus,
	})
}
