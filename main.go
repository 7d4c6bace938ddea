package main

import (
	"log"

	"gim/config"
	"gim/database"
	authRoutes "gim/routers/authRoutes"
	marketplaceRoutes "gim/routers/marketplaceRoutes"
	paymentRoutes "gim/routers/paymentRoutes"
	referralRoutes "gim/routers/referralRoutes"
	walletRoutes "gim/routers/walletRoutes"
	withdrawRoutes "gim/routers/withdrawRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization,X-User-Id",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	marketplaceRoutes.SetupMarketplaceRoutes(app)
	walletRoutes.SetupWalletRoutes(app)
	withdrawRoutes.SetupWithdrawRoutes(app)
	referralRoutes.SetupReferralRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
