package handler

import (
	"errors"
	"strconv"

	"ekin-backend/internal/repository"
	"ekin-backend/internal/usecase"
	"ekin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AuthHandler struct {
	auth  *usecase.AuthUsecase
	users repository.UserRepository
}

func NewAuthHandler(auth *usecase.AuthUsecase, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{auth: auth, users: users}
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if errs := validation.Struct(req, nil); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	token, user, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Username atau password salah"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat token"})
	}

	return c.JSON(fiber.Map{
		"message": "Login berhasil",
		"token":   token,
		"data": fiber.Map{
			"id":       user.ID,
			"nama":     user.Nama,
			"username": user.Username,
		},
	})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	token, _ := c.Locals("token").(string)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak ditemukan"})
	}

	if err := h.auth.Logout(token); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal logout"})
	}

	return c.JSON(fiber.Map{"message": "Logout berhasil"})
}

// Me mengembalikan profil user yang sedang login.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, err := claimedUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token tidak valid"})
	}

	user, err := h.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	return c.JSON(fiber.Map{"data": user})
}

// Claims angka dari encoding/json selalu float64.
func claimedUserID(c *fiber.Ctx) (uint, error) {
	switch v := c.Locals("user_id").(type) {
	case float64:
		return uint(v), nil
	case string:
		id, err := strconv.Atoi(v)
		return uint(id), err
	default:
		return 0, errors.New("user_id tidak ada di token")
	}
}
