package handler

import (
	"errors"
	"strconv"

	"ekin-backend/internal/model"
	"ekin-backend/internal/repository"
	"ekin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PangkatHandler struct {
	repo repository.PangkatRepository
}

func NewPangkatHandler(repo repository.PangkatRepository) *PangkatHandler {
	return &PangkatHandler{repo: repo}
}

type CreatePangkatRequest struct {
	Nama     string `json:"nama" validate:"required,max=255"`
	Golongan string `json:"golongan" validate:"required,max=10"`
}

type UpdatePangkatRequest struct {
	Nama     *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Golongan *string `json:"golongan" validate:"omitempty,min=1,max=10"`
}

func (h *PangkatHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pangkat"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *PangkatHandler) Create(c *fiber.Ctx) error {
	var req CreatePangkatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if errs := validation.Struct(req, nil); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	pangkat := model.Pangkat{Nama: req.Nama, Golongan: req.Golongan}
	if err := h.repo.Create(&pangkat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah pangkat"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Pangkat berhasil ditambahkan", "data": pangkat})
}

func (h *PangkatHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	pangkat, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pangkat"})
	}

	return c.JSON(fiber.Map{"data": pangkat})
}

func (h *PangkatHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	pangkat, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data pangkat"})
	}

	var req UpdatePangkatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	if errs := validation.Struct(req, nil); errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.Nama != nil {
		pangkat.Nama = *req.Nama
	}
	if req.Golongan != nil {
		pangkat.Golongan = *req.Golongan
	}
	if err := h.repo.Update(pangkat); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update pangkat"})
	}

	return c.JSON(fiber.Map{"message": "Pangkat berhasil diperbarui", "data": pangkat})
}

func (h *PangkatHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Pangkat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus pangkat"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
