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

type InstansiHandler struct {
	repo repository.InstansiRepository
}

func NewInstansiHandler(repo repository.InstansiRepository) *InstansiHandler {
	return &InstansiHandler{repo: repo}
}

type CreateInstansiRequest struct {
	Nama string `json:"nama" validate:"required,max=255"`
}

type UpdateInstansiRequest struct {
	Nama *string `json:"nama" validate:"omitempty,min=1,max=255"`
}

var instansiMessages = map[string]string{
	"nama.required": "Nama Instansi Wajib diisi",
	"nama.min":      "Nama Instansi Wajib diisi",
}

const instansiNamaUnique = "Nama Instansi sudah ada, harap pilih nama lain"

func (h *InstansiHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data instansi"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *InstansiHandler) Create(c *fiber.Ctx) error {
	var req CreateInstansiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, instansiMessages)
	if req.Nama != "" {
		taken, err := h.repo.NamaExists(req.Nama, 0)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa nama instansi"})
		}
		if taken {
			errs.Add("nama", instansiNamaUnique)
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	instansi := model.Instansi{Nama: req.Nama}
	if err := h.repo.Create(&instansi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah instansi"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Instansi berhasil ditambahkan", "data": instansi})
}

func (h *InstansiHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	instansi, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instansi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data instansi"})
	}

	return c.JSON(fiber.Map{"data": instansi})
}

func (h *InstansiHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	instansi, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instansi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data instansi"})
	}

	var req UpdateInstansiRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, instansiMessages)
	if req.Nama != nil && *req.Nama != "" {
		taken, err := h.repo.NamaExists(*req.Nama, instansi.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa nama instansi"})
		}
		if taken {
			errs.Add("nama", instansiNamaUnique)
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.Nama != nil {
		instansi.Nama = *req.Nama
	}
	if err := h.repo.Update(instansi); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update instansi"})
	}

	return c.JSON(fiber.Map{"message": "Instansi berhasil diperbarui", "data": instansi})
}

func (h *InstansiHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Instansi tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus instansi"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
