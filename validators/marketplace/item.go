package marketplaceValidator

import (
	"strings"

	"gim/middleware"

	"github.com/gofiber/fiber/v2"
)

// CreateItem validates a new listing request
func CreateItem() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Price       int64  `json:"price"`
			ImageURL    string `json:"imageUrl"`
			Category    string `json:"category"`
			Rarity      string `json:"rarity"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if reqData.Price <= 0 {
			errors["price"] = "Price must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedItem", reqData)
		return c.Next()
	}
}
