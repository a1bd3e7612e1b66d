package main

import (
	"fmt"

	"ekin-backend/config"
	"ekin-backend/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: File .env tidak ditemukan, menggunakan environment variables sistem.")
	}

	config.ConnectDB()

	app := fiber.New()

	// Middleware Global
	app.Use(cors.New())
	app.Use(logger.New())

	routes.SetupAuthRoutes(app, config.DB)
	routes.SetupInstansiRoutes(app, config.DB)
	routes.SetupJabatanRoutes(app, config.DB)
	routes.SetupPangkatRoutes(app, config.DB)
	routes.SetupIndikatorRoutes(app, config.DB)
	routes.SetupRhkPejabatRoutes(app, config.DB)
	routes.SetupRhkStaffRoutes(app, config.DB)
	routes.SetupUraianTugasRoutes(app, config.DB)
	routes.SetupUserRoutes(app, config.DB)

	port := config.GetEnv("PORT", "3000")
	fmt.Println("Server siap! Menunggu request di port :" + port)
	if err := app.Listen(":" + port); err != nil {
		panic(err)
	}
}
