package handler

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"ekin-backend/internal/model"
	"ekin-backend/internal/repository"
	"ekin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RhkStaffHandler struct {
	repo          repository.RhkStaffRepository
	jabatanRepo   repository.JabatanRepository
	indikatorRepo repository.IndikatorRepository
	instansiRepo  repository.InstansiRepository
}

func NewRhkStaffHandler(repo repository.RhkStaffRepository, jabatanRepo repository.JabatanRepository, indikatorRepo repository.IndikatorRepository, instansiRepo repository.InstansiRepository) *RhkStaffHandler {
	return &RhkStaffHandler{repo: repo, jabatanRepo: jabatanRepo, indikatorRepo: indikatorRepo, instansiRepo: instansiRepo}
}

type CreateRhkStaffRequest struct {
	JabatanID   uint     `json:"jabatan_id" validate:"required"`
	IndikatorID uint     `json:"indikator_id" validate:"required"`
	InstansiID  uint     `json:"instansi_id" validate:"required"`
	Uraian      string   `json:"uraian" validate:"required,max=255"`
	Nilai       *float64 `json:"nilai" validate:"required,gte=0,lte=100"`
	Tahun       int      `json:"tahun" validate:"required"`
}

type UpdateRhkStaffRequest struct {
	JabatanID   *uint    `json:"jabatan_id"`
	IndikatorID *uint    `json:"indikator_id"`
	InstansiID  *uint    `json:"instansi_id"`
	Uraian      *string  `json:"uraian" validate:"omitempty,min=1,max=255"`
	Nilai       *float64 `json:"nilai" validate:"omitempty,gte=0,lte=100"`
	Tahun       *int     `json:"tahun"`
}

func (h *RhkStaffHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK staff"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *RhkStaffHandler) Create(c *fiber.Ctx) error {
	var req CreateRhkStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.Tahun != 0 {
		checkTahun(req.Tahun, errs)
	}
	// Nol berarti tidak dikirim dan sudah kena aturan required.
	var jabatanID, indikatorID, instansiID *uint
	if req.JabatanID != 0 {
		jabatanID = &req.JabatanID
	}
	if req.IndikatorID != 0 {
		indikatorID = &req.IndikatorID
	}
	if req.InstansiID != 0 {
		instansiID = &req.InstansiID
	}
	if err := h.checkRelations(jabatanID, indikatorID, instansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	rhk := model.RhkStaff{
		JabatanID:   req.JabatanID,
		IndikatorID: req.IndikatorID,
		InstansiID:  req.InstansiID,
		Uraian:      req.Uraian,
		Nilai:       req.Nilai,
		Tahun:       req.Tahun,
	}
	if err := h.repo.Create(&rhk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah RHK staff"})
	}

	created, err := h.repo.GetByID(rhk.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK staff"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "RHK staff berhasil ditambahkan", "data": created})
}

func (h *RhkStaffHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	rhk, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK staff tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK staff"})
	}

	return c.JSON(fiber.Map{"data": rhk})
}

func (h *RhkStaffHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	rhk, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK staff tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK staff"})
	}

	var req UpdateRhkStaffRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	errs := validation.Struct(req, nil)
	if req.Tahun != nil {
		checkTahun(*req.Tahun, errs)
	}
	if err := h.checkRelations(req.JabatanID, req.IndikatorID, req.InstansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.JabatanID != nil {
		rhk.JabatanID = *req.JabatanID
	}
	if req.IndikatorID != nil {
		rhk.IndikatorID = *req.IndikatorID
	}
	if req.InstansiID != nil {
		rhk.InstansiID = *req.InstansiID
	}
	if req.Uraian != nil {
		rhk.Uraian = *req.Uraian
	}
	if req.Nilai != nil {
		rhk.Nilai = req.Nilai
	}
	if req.Tahun != nil {
		rhk.Tahun = *req.Tahun
	}
	if err := h.repo.Update(rhk); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update RHK staff"})
	}

	updated, err := h.repo.GetByID(rhk.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data RHK staff"})
	}

	return c.JSON(fiber.Map{"message": "RHK staff berhasil diperbarui", "data": updated})
}

func (h *RhkStaffHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "RHK staff tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus RHK staff"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// checkRelations memeriksa setiap FK yang dikirim; nil berarti field tidak
// dikirim. Nol eksplisit ikut diperiksa dan tidak pernah valid.
func (h *RhkStaffHandler) checkRelations(jabatanID, indikatorID, instansiID *uint, errs validation.Errors) error {
	if jabatanID != nil {
		exists, err := h.jabatanRepo.ExistsByID(*jabatanID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("jabatan_id", "Jabatan yang dipilih tidak valid")
		}
	}
	if indikatorID != nil {
		exists, err := h.indikatorRepo.ExistsByID(*indikatorID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("indikator_id", "Indikator yang dipilih tidak valid")
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

// Tahun harus 4 digit antara 2000 dan tahun berjalan.
func checkTahun(tahun int, errs validation.Errors) {
	now := time.Now().Year()
	if tahun < 2000 || tahun > now {
		errs.Add("tahun", fmt.Sprintf("Kolom tahun harus antara 2000 dan %d", now))
	}
}
