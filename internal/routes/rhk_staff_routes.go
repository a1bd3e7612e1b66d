package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRhkStaffRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewRhkStaffRepository(db)
	jabatanRepo := repository.NewJabatanRepository(db)
	indikatorRepo := repository.NewIndikatorRepository(db)
	instansiRepo := repository.NewInstansiRepository(db)
	hdl := handler.NewRhkStaffHandler(repo, jabatanRepo, indikatorRepo, instansiRepo)

	api := app.Group("/api/rhk-staff", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
