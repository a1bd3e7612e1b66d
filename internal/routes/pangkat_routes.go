package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupPangkatRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewPangkatRepository(db)
	hdl := handler.NewPangkatHandler(repo)

	api := app.Group("/api/pangkat", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
