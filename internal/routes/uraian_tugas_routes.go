package routes

import (
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupUraianTugasRoutes(app *fiber.App, db *gorm.DB) {
	repo := repository.NewUraianTugasRepository(db)
	indikatorRepo := repository.NewIndikatorRepository(db)
	rhkStaffRepo := repository.NewRhkStaffRepository(db)
	instansiRepo := repository.NewInstansiRepository(db)
	hdl := handler.NewUraianTugasHandler(repo, indikatorRepo, rhkStaffRepo, instansiRepo)

	api := app.Group("/api/uraian-tugas", middleware.Auth(db))

	api.Get("/", hdl.GetAll)
	api.Post("/", hdl.Create)
	api.Get("/:id", hdl.GetByID)
	api.Put("/:id", hdl.Update)
	api.Delete("/:id", hdl.Delete)
}
