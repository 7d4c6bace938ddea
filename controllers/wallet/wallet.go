package walletController

import (
	"errors"

	"gim/database"
	"gim/middleware"
	"gim/models"
	"gim/services"

	"github.com/gofiber/fiber/v2"
)

// GetWalletBalance returns the user's current balance and profile fields.
func GetWalletBalance(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	user, err := services.NewWalletService(database.Database.Db).Balance(userId)
	if err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch balance!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet balance fetched!", fiber.Map{
		"id":            user.ID,
		"username":      user.Username,
		"balance":       user.Balance,
		"email":         user.Email,
		"bio":           user.Bio,
		"profileAvatar": user.ProfileAvatar,
	})
}

// TopUpWallet credits the balance directly (dev/admin-triggered top-up path).
func TopUpWallet(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedTopUp").(*struct {
		Amount int64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := services.NewWalletService(database.Database.Db).TopUp(userId, reqData.Amount)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidAmount):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Amount must be greater than 0!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to top up balance!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Top-up successful!", fiber.Map{
		"id":       user.ID,
		"username": user.Username,
		"balance":  user.Balance,
	})
}

// GetWalletHistory returns the user's transaction history
func GetWalletHistory(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)

	transactions, total, err := services.NewWalletService(database.Database.Db).History(userId, page, limit)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet history fetched!", fiber.Map{
		"transactions": transactions,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// UpdateProfile updates display fields on the account
func UpdateProfile(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Email         string `json:"email"`
		Bio           string `json:"bio"`
		ProfileAvatar string `json:"profileAvatar"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = false", userId).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	user.Email = reqData.Email
	user.Bio = reqData.Bio
	user.ProfileAvatar = reqData.ProfileAvatar
	if err := db.Save(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated!", fiber.Map{
		"id":            user.ID,
		"username":      user.Username,
		"balance":       user.Balance,
		"email":         user.Email,
		"bio":           user.Bio,
		"profileAvatar": user.ProfileAvatar,
	})
}

// GetWalletStats returns ledger aggregates (Admin only)
func GetWalletStats(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	var admin models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false AND role = ?", userId, "ADMIN").First(&admin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Access Denied! Admin role required.", nil)
	}

	stats, err := services.NewWalletService(database.Database.Db).Stats()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stats!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Wallet stats fetched!", stats)
}
