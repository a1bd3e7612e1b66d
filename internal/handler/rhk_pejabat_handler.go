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

type RhkPejabatHandler struct {
	repo         repository.RhkPejabatRepository
	jabatanRepo  repository.JabatanRepository
	instansiRepo repository.InstansiRepository
}

func NewRhkPejabatHandler(repo repository.RhkPejabatRepository, jabatanRepo repository.JabatanRepository, instansiRepo repository.InstansiRepository) *RhkPejabatHandler {
	return &RhkPejabatHandler{repo: repo, jabatanRepo: jabatanRepo, instansiRepo: instansiRepo}
}

type CreateRhkPejabatRequest struct {
	JabatanID  uint   `json:"jabatan_id" validate:"required"`
	InstansiID uint   `json:"instansi_id" validate:"required"`
	Uraian     string `json:"uraian" validate:"required,max=255"`
}

type UpdateRhkPejabatRequest struct {
	JabatanID  *uint   `json:"jabatan_id"`
	InstansiID *uint   `json:"instansi_id"`
	Uraian     *string `json:"uraian" validate:"omitempty,min=1,max=255"`
}

func (h *RhkPejabatHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK pejabat"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *RhkPejabatHandler) Create(c *fiber.Ctx) error {
	var req CreateRhkPejabatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.JabatanID != 0 {
		if err := h.checkJabatan(req.JabatanID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
		}
	}
	if req.InstansiID != 0 {
		if err := h.checkInstansi(req.InstansiID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa instansi"})
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	rhk := model.RhkPejabat{JabatanID: req.JabatanID, InstansiID: req.InstansiID, Uraian: req.Uraian}
	if err := h.repo.Create(&rhk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah RHK pejabat"})
	}

	created, err := h.repo.GetByID(rhk.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK pejabat"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "RHK pejabat berhasil ditambahkan", "data": created})
}

func (h *RhkPejabatHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	rhk, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK pejabat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK pejabat"})
	}

	return c.JSON(fiber.Map{"data": rhk})
}

func (h *RhkPejabatHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	rhk, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK pejabat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK pejabat"})
	}

	var req UpdateRhkPejabatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.JabatanID != nil {
		if err := h.checkJabatan(*req.JabatanID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa jabatan"})
		}
	}
	if req.InstansiID != nil {
		if err := h.checkInstansi(*req.InstansiID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa instansi"})
		}
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.JabatanID != nil {
		rhk.JabatanID = *req.JabatanID
	}
	if req.InstansiID != nil {
		rhk.InstansiID = *req.InstansiID
	}
	if req.Uraian != nil {
		rhk.Uraian = *req.Uraian
	}
	if err := h.repo.Update(rhk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update RHK pejabat"})
	}

	updated, err := h.repo.GetByID(rhk.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK pejabat"})
	}

	return c.JSON(fiber.Map{"message": "RHK pejabat berhasil diperbarui", "data": updated})
}

func (h *RhkPejabatHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK pejabat tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus RHK pejabat"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RhkPejabatHandler) checkJabatan(id uint, errs validation.Errors) error {
	exists, err := h.jabatanRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("jabatan_id", "Jabatan yang dipilih tidak valid")
	}
	return nil
}

func (h *RhkPejabatHandler) checkInstansi(id uint, errs validation.Errors) error {
	exists, err := h.instansiRepo.ExistsByID(id)
	if err != nil {
		return err
	}
	if !exists {
		errs.Add("instansi_id", "Instansi yang dipilih tidak valid")
	}
	return nil
}
