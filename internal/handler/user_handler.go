package handler

import (
	"errors"
	"strconv"

	"ekin-backend/internal/model"
	"ekin-backend/internal/repository"
	"ekin-backend/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserHandler struct {
	repo         repository.UserRepository
	jabatanRepo  repository.JabatanRepository
	pangkatRepo  repository.PangkatRepository
	instansiRepo repository.InstansiRepository
}

func NewUserHandler(repo repository.UserRepository, jabatanRepo repository.JabatanRepository, pangkatRepo repository.PangkatRepository, instansiRepo repository.InstansiRepository) *UserHandler {
	return &UserHandler{repo: repo, jabatanRepo: jabatanRepo, pangkatRepo: pangkatRepo, instansiRepo: instansiRepo}
}

type CreateUserRequest struct {
	Nama         string  `json:"nama" validate:"required,max=255"`
	Username     string  `json:"username" validate:"required,max=255"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Password     string  `json:"password" validate:"required,min=6"`
	NIP          *string `json:"nip" validate:"omitempty,max=255"`
	NIK          *string `json:"nik" validate:"omitempty,max=255"`
	JenisPegawai *string `json:"jenis_pegawai" validate:"omitempty,oneof=pns non_pns"`
	NoWA         *string `json:"no_wa" validate:"omitempty,max=255"`
	JabatanID    *uint   `json:"jabatan_id"`
	PangkatID    *uint   `json:"pangkat_id"`
	IDAtasan     *uint   `json:"id_atasan"`
	InstansiID   *uint   `json:"instansi_id"`
}

type UpdateUserRequest struct {
	Nama         *string `json:"nama" validate:"omitempty,min=1,max=255"`
	Username     *string `json:"username" validate:"omitempty,min=1,max=255"`
	Email        *string `json:"email" validate:"omitempty,email,max=255"`
	Password     *string `json:"password"`
	NIP          *string `json:"nip" validate:"omitempty,max=255"`
	NIK          *string `json:"nik" validate:"omitempty,max=255"`
	JenisPegawai *string `json:"jenis_pegawai" validate:"omitempty,oneof=pns non_pns"`
	NoWA         *string `json:"no_wa" validate:"omitempty,max=255"`
	JabatanID    *uint   `json:"jabatan_id"`
	PangkatID    *uint   `json:"pangkat_id"`
	IDAtasan     *uint   `json:"id_atasan"`
	InstansiID   *uint   `json:"instansi_id"`
}

func (h *UserHandler) GetAll(c *fiber.Ctx) error {
	list, err := h.repo.GetAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	// String opsional yang dikirim kosong diperlakukan seperti tidak dikirim.
	req.Email = normalizeOptional(req.Email)
	req.NIP = normalizeOptional(req.NIP)
	req.NIK = normalizeOptional(req.NIK)
	req.JenisPegawai = normalizeOptional(req.JenisPegawai)
	req.NoWA = normalizeOptional(req.NoWA)

	errs := validation.Struct(req, nil)
	if req.Username != "" {
		if err := h.checkUnique("username", req.Username, 0, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa keunikan data"})
		}
	}
	for field, value := range map[string]*string{"email": req.Email, "nip": req.NIP, "nik": req.NIK} {
		if value == nil {
			continue
		}
		if err := h.checkUnique(field, *value, 0, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa keunikan data"})
		}
	}
	if err := h.checkRelations(req.JabatanID, req.PangkatID, req.IDAtasan, req.InstansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
	}

	user := model.User{
		Nama:         req.Nama,
		Username:     req.Username,
		Email:        req.Email,
		Password:     string(hashed),
		NIP:          req.NIP,
		NIK:          req.NIK,
		JenisPegawai: req.JenisPegawai,
		NoWA:         req.NoWA,
		JabatanID:    req.JabatanID,
		PangkatID:    req.PangkatID,
		IDAtasan:     req.IDAtasan,
		InstansiID:   req.InstansiID,
	}
	if err := h.repo.Create(&user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menambah user"})
	}

	created, err := h.repo.GetByID(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "User berhasil ditambahkan", "data": created})
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	return c.JSON(fiber.Map{"data": user})
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	user, err := h.repo.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	var req UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format data salah"})
	}

	req.Email = normalizeOptional(req.Email)
	req.NIP = normalizeOptional(req.NIP)
	req.NIK = normalizeOptional(req.NIK)
	req.JenisPegawai = normalizeOptional(req.JenisPegawai)
	req.NoWA = normalizeOptional(req.NoWA)

	errs := validation.Struct(req, nil)
	if req.Username != nil && *req.Username != "" {
		if err := h.checkUnique("username", *req.Username, user.ID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa keunikan data"})
		}
	}
	for field, value := range map[string]*string{"email": req.Email, "nip": req.NIP, "nik": req.NIK} {
		if value == nil {
			continue
		}
		if err := h.checkUnique(field, *value, user.ID, errs); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa keunikan data"})
		}
	}
	// Password hanya divalidasi dan di-hash ulang jika dikirim dan tidak kosong.
	if req.Password != nil && *req.Password != "" && len(*req.Password) < 6 {
		errs.Add("password", "Kolom password minimal 6 karakter")
	}
	if err := h.checkRelations(req.JabatanID, req.PangkatID, req.IDAtasan, req.InstansiID, errs); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memeriksa relasi"})
	}
	if errs.Any() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"message": "Validasi gagal", "errors": errs})
	}

	if req.Nama != nil {
		user.Nama = *req.Nama
	}
	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal memproses password"})
		}
		user.Password = string(hashed)
	}
	if req.NIP != nil {
		user.NIP = req.NIP
	}
	if req.NIK != nil {
		user.NIK = req.NIK
	}
	if req.JenisPegawai != nil {
		user.JenisPegawai = req.JenisPegawai
	}
	if req.NoWA != nil {
		user.NoWA = req.NoWA
	}
	if req.JabatanID != nil {
		user.JabatanID = req.JabatanID
	}
	if req.PangkatID != nil {
		user.PangkatID = req.PangkatID
	}
	if req.IDAtasan != nil {
		user.IDAtasan = req.IDAtasan
	}
	if req.InstansiID != nil {
		user.InstansiID = req.InstansiID
	}
	if err := h.repo.Update(user); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal update user"})
	}

	updated, err := h.repo.GetByID(user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data user"})
	}

	return c.JSON(fiber.Map{"message": "User berhasil diperbarui", "data": updated})
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))

	if err := h.repo.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "User tidak ditemukan"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghapus user"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UserHandler) checkUnique(field, value string, excludeID uint, errs validation.Errors) error {
	var (
		taken bool
		err   error
	)
	switch field {
	case "username":
		taken, err = h.repo.UsernameExists(value, excludeID)
	case "email":
		taken, err = h.repo.EmailExists(value, excludeID)
	case "nip":
		taken, err = h.repo.NIPExists(value, excludeID)
	case "nik":
		taken, err = h.repo.NIKExists(value, excludeID)
	}
	if err != nil {
		return err
	}
	if taken {
		errs.Add(field, "Kolom "+field+" sudah digunakan")
	}
	return nil
}

func (h *UserHandler) checkRelations(jabatanID, pangkatID, idAtasan, instansiID *uint, errs validation.Errors) error {
	if jabatanID != nil {
		exists, err := h.jabatanRepo.ExistsByID(*jabatanID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("jabatan_id", "Jabatan yang dipilih tidak valid")
		}
	}
	if pangkatID != nil {
		exists, err := h.pangkatRepo.ExistsByID(*pangkatID)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("pangkat_id", "Pangkat yang dipilih tidak valid")
		}
	}
	if idAtasan != nil {
		exists, err := h.repo.ExistsByID(*idAtasan)
		if err != nil {
			return err
		}
		if !exists {
			errs.Add("id_atasan", "Atasan yang dipilih tidak valid")
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

func normalizeOptional(s *string) *string {
	if s != nil && *s == "" {
		return nil
	}
	return s
}
