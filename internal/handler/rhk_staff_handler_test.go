package handler_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"ekin-backend/internal/model"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func seedRhkStaffDeps(t *testing.T, db *gorm.DB) (model.Instansi, model.Jabatan, model.Indikator) {
	t.Helper()

	instansi := model.Instansi{Nama: "Dinas Pendidikan"}
	if err := db.Create(&instansi).Error; err != nil {
		t.Fatalf("seed instansi: %v", err)
	}
	jabatan := model.Jabatan{Kode: "STAF", Nama: "Staf Pelaksana"}
	if err := db.Create(&jabatan).Error; err != nil {
		t.Fatalf("seed jabatan: %v", err)
	}
	indikator := model.Indikator{InstansiID: instansi.ID, Uraian: "Indeks layanan"}
	if err := db.Create(&indikator).Error; err != nil {
		t.Fatalf("seed indikator: %v", err)
	}
	return instansi, jabatan, indikator
}

func TestRhkStaffTahunRange(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)

	payload := fiber.Map{
		"jabatan_id":   jabatan.ID,
		"indikator_id": indikator.ID,
		"instansi_id":  instansi.ID,
		"uraian":       "Menyusun laporan kegiatan harian",
		"nilai":        85.5,
		"tahun":        1999,
	}
	status, body := request(t, app, http.MethodPost, "/api/rhk-staff", token, payload)
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("tahun 1999: got %d, body %v", status, body)
	}
	fieldErrors(t, body, "tahun")

	var n int64
	db.Model(&model.RhkStaff{}).Count(&n)
	if n != 0 {
		t.Fatalf("rejected create persisted %d rows", n)
	}

	payload["tahun"] = time.Now().Year()
	status, body = request(t, app, http.MethodPost, "/api/rhk-staff", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("tahun %d: got %d, body %v", time.Now().Year(), status, body)
	}
	d := data(t, body)
	if d["nilai"].(float64) != 85.5 {
		t.Errorf("nilai = %v", d["nilai"])
	}
	// Relasi ikut dimuat satu tingkat.
	if d["instansi"].(map[string]interface{})["nama"] != "Dinas Pendidikan" {
		t.Errorf("instansi not embedded: %v", d["instansi"])
	}
}

func TestRhkStaffUnknownForeignKey(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, _, indikator := seedRhkStaffDeps(t, db)

	status, body := request(t, app, http.MethodPost, "/api/rhk-staff", token, fiber.Map{
		"jabatan_id":   999,
		"indikator_id": indikator.ID,
		"instansi_id":  instansi.ID,
		"uraian":       "Rekap data bulanan",
		"nilai":        90.0,
		"tahun":        time.Now().Year(),
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "jabatan_id")

	var n int64
	db.Model(&model.RhkStaff{}).Count(&n)
	if n != 0 {
		t.Fatalf("rejected create persisted %d rows", n)
	}
}

func TestRhkStaffNilaiRange(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)

	status, body := request(t, app, http.MethodPost, "/api/rhk-staff", token, fiber.Map{
		"jabatan_id":   jabatan.ID,
		"indikator_id": indikator.ID,
		"instansi_id":  instansi.ID,
		"uraian":       "Rekap data bulanan",
		"nilai":        120.0,
		"tahun":        time.Now().Year(),
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "nilai")
}

func TestRhkStaffPartialUpdate(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)

	nilai := 70.0
	staff := model.RhkStaff{
		JabatanID:   jabatan.ID,
		IndikatorID: indikator.ID,
		InstansiID:  instansi.ID,
		Uraian:      "Menyusun laporan kegiatan harian",
		Nilai:       &nilai,
		Tahun:       2023,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/rhk-staff/%d", staff.ID), token, fiber.Map{
		"nilai": 95.0,
	})
	if status != http.StatusOK {
		t.Fatalf("update: got %d, body %v", status, body)
	}

	_, body = request(t, app, http.MethodGet, fmt.Sprintf("/api/rhk-staff/%d", staff.ID), token, nil)
	d := data(t, body)
	if d["nilai"].(float64) != 95.0 {
		t.Errorf("nilai = %v", d["nilai"])
	}
	if d["uraian"] != "Menyusun laporan kegiatan harian" {
		t.Errorf("uraian changed: %v", d["uraian"])
	}
	if d["tahun"].(float64) != 2023 {
		t.Errorf("tahun changed: %v", d["tahun"])
	}
}

func TestRhkStaffUpdateExplicitZeroForeignKey(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)

	nilai := 70.0
	staff := model.RhkStaff{
		JabatanID:   jabatan.ID,
		IndikatorID: indikator.ID,
		InstansiID:  instansi.ID,
		Uraian:      "Menyusun laporan kegiatan harian",
		Nilai:       &nilai,
		Tahun:       2023,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	// Nol eksplisit bukan "tidak dikirim": tidak boleh lolos pemeriksaan FK.
	status, body := request(t, app, http.MethodPut, fmt.Sprintf("/api/rhk-staff/%d", staff.ID), token, fiber.Map{
		"jabatan_id": 0,
	})
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("got %d, body %v", status, body)
	}
	fieldErrors(t, body, "jabatan_id")

	var got model.RhkStaff
	if err := db.First(&got, staff.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.JabatanID != jabatan.ID {
		t.Errorf("jabatan_id overwritten: got %d, want %d", got.JabatanID, jabatan.ID)
	}
}

func TestInstansiCascadeOverHTTP(t *testing.T) {
	app, db, token := setupApp(t)
	instansi, jabatan, indikator := seedRhkStaffDeps(t, db)

	nilai := 80.0
	staff := model.RhkStaff{
		JabatanID:   jabatan.ID,
		IndikatorID: indikator.ID,
		InstansiID:  instansi.ID,
		Uraian:      "Rekap data bulanan",
		Nilai:       &nilai,
		Tahun:       2024,
	}
	if err := db.Create(&staff).Error; err != nil {
		t.Fatalf("seed staff: %v", err)
	}

	status, _ := request(t, app, http.MethodDelete, fmt.Sprintf("/api/instansi/%d", instansi.ID), token, nil)
	if status != http.StatusNoContent {
		t.Fatalf("delete instansi: got %d", status)
	}

	if status, _ := request(t, app, http.MethodGet, fmt.Sprintf("/api/indikator/%d", indikator.ID), token, nil); status != http.StatusNotFound {
		t.Errorf("indikator survived cascade: got %d", status)
	}
	if status, _ := request(t, app, http.MethodGet, fmt.Sprintf("/api/rhk-staff/%d", staff.ID), token, nil); status != http.StatusNotFound {
		t.Errorf("rhk staff survived cascade: got %d", status)
	}
	// Jabatan tidak menunjuk instansi, harus tetap ada.
	if status, _ := request(t, app, http.MethodGet, fmt.Sprintf("/api/jabatan/%d", jabatan.ID), token, nil); status != http.StatusOK {
		t.Errorf("jabatan should survive: got %d", status)
	}
}
