package routes

import (
	"ekin-backend/config"
	"ekin-backend/internal/handler"
	"ekin-backend/internal/middleware"
	"ekin-backend/internal/repository"
	"ekin-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupAuthRoutes(app *fiber.App, db *gorm.DB) {
	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)
	auth := usecase.NewAuthUsecase(users, tokens, config.JWTSecret())
	hdl := handler.NewAuthHandler(auth, users)

	app.Post("/api/login", hdl.Login)

	// Auth dipasang per route, bukan pada group "/api": middleware group
	// berlaku untuk seluruh prefix sehingga route resource akan kena dua kali.
	app.Post("/api/logout", middleware.Auth(db), hdl.Logout)
	app.Get("/api/user", middleware.Auth(db), hdl.Me)
}
