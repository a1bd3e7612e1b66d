package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupJabatanRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewJabatanRepository(db)
	hdl := handler.NewJabatanHandler(repo)

	api := app.Group("/api/jabatan", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
