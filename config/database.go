package config

import (
	"fmt"

	"ekin-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASS", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "ekin_db"),
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	if err := Migrate(db); err != nil {
		panic("Gagal migrasi database: " + err.Error())
	}

	DB = db
}

// Migrate membuat tabel sesuai urutan referensi antar entitas.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Instansi{},
		&model.Jabatan{},
		&model.Pangkat{},
		&model.Indikator{},
		&model.RhkPejabat{},
		&model.RhkStaff{},
		&model.UraianTugas{},
		&model.User{},
		&model.TokenBlacklist{},
	)
}
