package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupIndikatorRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewIndikatorRepository(db)
	instansiRepo := repository.NewInstansiRepository(db)
	hdl := handler.NewIndikatorHandler(repo, instansiRepo)

	api := app.Group("/api/indikator", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
