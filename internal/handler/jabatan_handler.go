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

type JabatanHandler struct {
	repo repository.JabatanRepository
}

func NewJabatanHandler(repo repository.JabatanRepository) *JabatanHandler {
	return &JabatanHandler{repo: repo}
}

type CreateJabatanRequest struct {
	Kode string `json:"kode" validate:"required,max=50"`
	Nama string `json:"nama" validate:"required,max=255"`
}

type UpdateJabatanRequest struct {
	Kode *string `json:"kode" validate:"omitempty,min=1,max=50"`
	Nama *string `json:"nama" validate:"omitempty,min=1,max=255"`
}

const jabatanKodeUnique = "Kode jabatan sudah digunakan"

func (h *JabatanHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *JabatanHandler) Create(c *fiber.Ctx) error {
	var req CreateJabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.Kode != "" {
		taken, err := h.repo.KodeExists(req.Kode, 0)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa kode jabatan"})
		}
		if taken {
			errs.Add("kode", jabatanKodeUnique)
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	jabatan := model.Jabatan{Kode: req.Kode, Nama: req.Nama}
	if err := h.repo.Create(&jabatan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah jabatan"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Jabatan berhasil ditambahkan", "data": jabatan})
}

func (h *JabatanHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jabatan, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Jabatan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}

	return c.JSON(fiber.Map{"data": jabatan})
}

func (h *JabatanHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	jabatan, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Jabatan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data jabatan"})
	}

	var req UpdateJabatanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.Kode != nil && *req.Kode != "" {
		taken, err := h.repo.KodeExists(*req.Kode, jabatan.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa kode jabatan"})
		}
		if taken {
			errs.Add("kode", jabatanKodeUnique)
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.Kode != nil {
		jabatan.Kode = *req.Kode
	}
	if req.Nama != nil {
		jabatan.Nama = *req.Nama
	}
	if err := h.repo.Update(jabatan); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update jabatan"})
	}

	return c.JSON(fiber.Map{"message": "Jabatan berhasil diperbarui", "data": jabatan})
}

func (h *JabatanHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Jabatan tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus jabatan"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
