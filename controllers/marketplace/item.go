package marketplaceController

import (
	"errors"
	"time"

	"gim/database"
	"gim/middleware"
	"gim/models"
	"gim/services"

	"github.com/gofiber/fiber/v2"
)

type itemRow struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Rarity      string    `json:"rarity"`
	IsSold      bool      `json:"isSold"`
	SellerName  string    `json:"sellerName"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListItems returns unsold listings, newest first (public).
func ListItems(c *fiber.Ctx) error {
	var items []itemRow
	err := database.Database.Db.
		Table("items").
		Select("items.id, items.title, items.description, items.price, items.image_url, items.category, items.rarity, items.is_sold, items.created_at, users.username AS seller_name").
		Joins("LEFT JOIN users ON users.id = items.seller_id").
		Where("items.is_sold = false AND items.is_deleted = false").
		Order("items.created_at DESC").
		Scan(&items).Error
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch items!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Items fetched!", fiber.Map{
		"items": items,
	})
}

// CreateItem creates a listing owned by the authenticated user.
func CreateItem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedItem").(*struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Price       int64  `json:"price"`
		ImageURL    string `json:"imageUrl"`
		Category    string `json:"category"`
		Rarity      string `json:"rarity"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	item := models.Item{
		SellerID:    userId,
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		ImageURL:    reqData.ImageURL,
		Category:    reqData.Category,
		Rarity:      reqData.Rarity,
	}

	if err := database.Database.Db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Item listed!", item)
}

// BuyItem runs the purchase transaction for the authenticated buyer.
func BuyItem(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)

	itemId, err := c.ParamsInt("id")
	if err != nil || itemId <= 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid item id!", nil)
	}

	result, err := services.NewPurchaseService(database.Database.Db).Purchase(userId, uint(itemId))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Item not found!", nil)
		case errors.Is(err, services.ErrItemAlreadySold):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Item already sold!", nil)
		case errors.Is(err, services.ErrSelfPurchase):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "You cannot buy your own item!", nil)
		case errors.Is(err, services.ErrAccountNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Account not found!", nil)
		case errors.Is(err, services.ErrInsufficientBalance):
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Insufficient balance!", nil)
		default:
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to complete purchase!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchase successful!", result)
}
