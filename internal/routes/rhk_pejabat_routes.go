package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRhkPejabatRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewRhkPejabatRepository(db)
	jabatanRepo := repository.NewJabatanRepository(db)
	instansiRepo := repository.NewInstansiRepository(db)
	hdl := handler.NewRhkPejabatHandler(repo, jabatanRepo, instansiRepo)

	api := app.Group("/api/rhk-pejabat", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
