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

type UraianTugasHandler struct {
	repo          repository.UraianTugasRepository
	indikatorRepo repository.IndikatorRepository
	rhkStaffRepo  repository.RhkStaffRepository
	instansiRepo  repository.InstansiRepository
}

func NewUraianTugasHandler(repo repository.UraianTugasRepository, indikatorRepo repository.IndikatorRepository, rhkStaffRepo repository.RhkStaffRepository, instansiRepo repository.InstansiRepository) *UraianTugasHandler {
	return &UraianTugasHandler{repo: repo, indikatorRepo: indikatorRepo, rhkStaffRepo: rhkStaffRepo, instansiRepo: instansiRepo}
}

type CreateUraianTugasRequest struct {
	IndikatorID uint   `json:"indikator_id" validate:"required"`
	RhkStaffID  uint   `json:"rhk_staff_id" validate:"required"`
	InstansiID  uint   `json:"instansi_id" validate:"required"`
	Uraian      string `json:"uraian" validate:"required,max=255"`
}

type UpdateUraianTugasRequest struct {
	IndikatorID *uint   `json:"indikator_id"`
	RhkStaffID  *uint   `json:"rhk_staff_id"`
	InstansiID  *uint   `json:"instansi_id"`
	Uraian      *string `json:"uraian" validate:"omitempty,min=1,max=255"`
}

func (h *UraianTugasHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data uraian tugas"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *UraianTugasHandler) Create(c *fiber.Ctx) error {
	var req CreateUraianTugasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	// Nol berarti tidak dikirim dan sudah kena aturan required.
	var indikatorID, rhkStaffID, instansiID *uint
	if req.IndikatorID != 0 {
		indikatorID = &req.IndikatorID
	}
	if req.RhkStaffID != 0 {
		rhkStaffID = &req.RhkStaffID
	}
	if req.InstansiID != 0 {
		instansiID = &req.InstansiID
	}
	if err := h.checkRelations(indikatorID, rhkStaffID, instansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	ut := model.UraianTugas{
		IndikatorID: req.IndikatorID,
		RhkStaffID:  req.RhkStaffID,
		InstansiID:  req.InstansiID,
		Uraian:      req.Uraian,
	}
	if err := h.repo.Create(&ut); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah uraian tugas"})
	}

	created, err := h.repo.GetByID(ut.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data uraian tugas"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Uraian tugas berhasil ditambahkan", "data": created})
}

func (h *UraianTugasHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	ut, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Uraian tugas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data uraian tugas"})
	}

	return c.JSON(fiber.Map{"data": ut})
}

func (h *UraianTugasHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	ut, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Uraian tugas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data uraian tugas"})
	}

	var req UpdateUraianTugasRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if err := h.checkRelations(req.IndikatorID, req.RhkStaffID, req.InstansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.IndikatorID != nil {
		ut.IndikatorID = *req.IndikatorID
	}
	if req.RhkStaffID != nil {
		ut.RhkStaffID = *req.RhkStaffID
	}
	if req.InstansiID != nil {
		ut.InstansiID = *req.InstansiID
	}
	if req.Uraian != nil {
		ut.Uraian = *req.Uraian
	}
	if err := h.repo.Update(ut); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update uraian tugas"})
	}

	updated, err := h.repo.GetByID(ut.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data uraian tugas"})
	}

	return c.JSON(fiber.Map{"message": "Uraian tugas berhasil diperbarui", "data": updated})
}

func (h *UraianTugasHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "Uraian tugas tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus uraian tugas"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// checkRelations memeriksa setiap FK yang dikirim; nil berarti field tidak
// dikirim. Nol eksplisit ikut diperiksa dan tidak pernah valid.
func (h *UraianTugasHandler) checkRelations(indikatorID, rhkStaffID, instansiID *uint, errs validation.Errors) error {
	if indikatorID != nil {
		exists, err := h.indikatorRepo.ExistsByID(*indikatorID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("indikator_id", "Indikator yang dipilih tidak valid")
		}
	}
	if rhkStaffID != nil {
		exists, err := h.rhkStaffRepo.ExistsByID(*rhkStaffID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("rhk_staff_id", "RHK staff yang dipilih tidak valid")
		}
	}
	if instansiID != nil {
		exists, err := h.instansiRepo.ExistsByID(*instansiID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("instansi_id", "Instansi yang dipilih tidak valid")
		}
	}
	return nil
}
