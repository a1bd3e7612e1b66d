package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"ekin-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func seedUraianTugas(t *testing.T, db *gorm.DB) model.UraianTugas {
	t.Helper()

	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)
	nilai := 75.0
	staff := model.RhkStaff{
		JabatanID:   jabatan.ID,
		IndikatorID: indikator.ID,
		InstansiID:  instansi.ID,
		Uraian:      "Menyusun laporan kegiatan harian",
		Nilai:       &nilai,
		Tahun:       2024,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	tugas := model.UraianTugas{
		IndikatorID: indikator.ID,
		RhkStaffID:  staff.ID,
		InstansiID:  instansi.ID,
		Uraian:      "Rekap data bulanan",
	}
	if err := db.Create(&tugas).Error; err != nil {
		t.Fatalf("seed uraian tugas: %v", err)
	}
	return tugas
}

func TestUraianTugasUpdateExplicitZeroForeignKey(t *testing.T) {
	app, db, token := setupApp(t)
	tugas := seedUraianTugas(t, db)

	// Nol eksplisit bukan "tidak dikirim": tidak boleh lolos pemeriksaan FK.
	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/uraian-tugas/%d", tugas.ID), token, fiber.Map{
		"rhk_staff_id": 0,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "rhk_staff_id")

	var got model.UraianTugas
	if err := db.First(&got, tugas.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.RhkStaffID != tugas.RhkStaffID {
		t.Errorf("rhk_staff_id overwritten: got %d, want %d", got.RhkStaffID, tugas.RhkStaffID)
	}
}

func TestUraianTugasUpdateUnknownForeignKey(t *testing.T) {
	app, db, token := setupApp(t)
	tugas := seedUraianTugas(t, db)

	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/uraian-tugas/%d", tugas.ID), token, fiber.Map{
		"indikator_id": 999,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "indikator_id")
}
