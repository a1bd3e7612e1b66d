package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUserRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUserRepository(db)
	jabatanRepo := repository.NewJabatanRepository(db)
	pangkatRepo := repository.NewPangkatRepository(db)
	instansiRepo := repository.NewInstansiRepository(db)
	hdl := handler.NewUserHandler(repo, jabatanRepo, pangkatRepo, instansiRepo)

	api := app.Group("/api/users", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
