package middleware

import (
	"strings"

	"ekin-backend/config"
	"ekin-backend/internal/repository"
	"ekin-backend/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Auth memvalidasi header "Authorization: Bearer <token>": tanda tangan,
// masa berlaku, dan blacklist logout. Claims disimpan ke Locals.
func Auth(db *gorm.DB) fiber.Handler {
	tokens := repository.NewTokenRepository(db)
	secret := config.JWTSecret()

	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
		}

		tokenString := strings.TrimSpace(strings.Replace(authHeader, "Bearer ", "", 1))

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.ErrUnauthorized
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid atau kadaluwarsa"})
		}

		revoked, err := tokens.IsBlacklisted(usecase.HashToken(tokenString, secret))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa token"})
		}
		if revoked {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token sudah dicabut, silakan login ulang"})
		}

		claims := token.Claims.(jwt.MapClaims)
		c.Locals("user_id", claims["user_id"])
		c.Locals("username", claims["username"])
		c.Locals("token", tokenString)

		return c.Next()
	}
}
