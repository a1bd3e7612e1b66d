package database

import (
	"log"

	"ekin-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Instansi awal
	instansi := model.Instansi{Nama: "Dinas Komunikasi dan Informatika"}
	db.FirstOrCreate(&instansi, model.Instansi{Nama: instansi.Nama})

	// 2. Jabatan dasar
	jabatanList := []model.Jabatan{
		{Kode: "KADIS", Nama: "Kepala Dinas"},
		{Kode: "SEKDIS", Nama: "Sekretaris Dinas"},
		{Kode: "STAF", Nama: "Staf Pelaksana"},
	}
	for _, j := range jabatanList {
		db.FirstOrCreate(&j, model.Jabatan{Kode: j.Kode})
	}

	// 3. Pangkat dasar
	pangkatList := []model.Pangkat{
		{Nama: "Pembina", Golongan: "IV/a"},
		{Nama: "Penata", Golongan: "III/c"},
		{Nama: "Pengatur", Golongan: "II/c"},
	}
	for _, p := range pangkatList {
		db.FirstOrCreate(&p, model.Pangkat{Nama: p.Nama, Golongan: p.Golongan})
	}

	// 4. Akun admin pertama
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Gagal hash password admin:", err)
	}

	jenis := model.JenisPegawaiPNS
	admin := model.User{
		Nama:         "Administrator",
		Username:     "admin",
		Password:     string(hashed),
		JenisPegawai: &jenis,
		InstansiID:   &instansi.ID,
	}
	db.FirstOrCreate(&admin, model.User{Username: admin.Username})

	log.Println("Seeder selesai: instansi, jabatan, pangkat, dan akun admin siap.")
}
