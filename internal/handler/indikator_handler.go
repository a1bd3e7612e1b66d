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

type IndikatorHandler struct {
	repo         repository.IndikatorRepository
	instansiRepo repository.InstansiRepository
}

func NewIndikatorHandler(repo repository.IndikatorRepository, instansiRepo repository.InstansiRepository) *IndikatorHandler {
	return &IndikatorHandler{repo: repo, instansiRepo: instansiRepo}
}

type CreateIndikatorRequest struct {
	InstansiID uint   `json:"instansi_id" validate:"required"`
	Uraian     string `json:"uraian" validate:"required,max=255"`
}

type UpdateIndikatorRequest struct {
	InstansiID *uint   `json:"instansi_id"`
	Uraian     *string `json:"uraian" validate:"omitempty,min=1,max=255"`
}

func (h *IndikatorHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data indikator"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *IndikatorHandler) Create(c *fiber.Ctx) error {
	var req CreateIndikatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.InstansiID != 0 {
		if err := h.checkInstansi(req.InstansiID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa instansi"})
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	indikator := model.Indikator{InstansiID: req.InstansiID, Uraian: req.Uraian}
	if err := h.repo.Create(&indikator); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah indikator"})
	}

	created, err := h.repo.GetByID(indikator.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data indikator"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Indikator berhasil ditambahkan", "data": created})
}

func (h *IndikatorHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	indikator, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Indikator tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data indikator"})
	}

	return c.JSON(fiber.Map{"data": indikator})
}

func (h *IndikatorHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	indikator, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Indikator tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data indikator"})
	}

	var req UpdateIndikatorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.InstansiID != nil {
		if err := h.checkInstansi(*req.InstansiID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa instansi"})
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.InstansiID != nil {
		indikator.InstansiID = *req.InstansiID
	}
	if req.Uraian != nil {
		indikator.Uraian = *req.Uraian
	}
	if err := h.repo.Update(indikator); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update indikator"})
	}

	updated, err := h.repo.GetByID(indikator.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data indikator"})
	}

	return c.JSON(fiber.Map{"message": "Indikator berhasil diperbarui", "data": updated})
}

func (h *IndikatorHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Indikator tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus indikator"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *IndikatorHandler) checkInstansi(id uint, errs validation.Errors) error {
	exists, err := h.instansiRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("instansi_id", "Instansi yang dipilih tidak valid")
	}
	return nil
}
