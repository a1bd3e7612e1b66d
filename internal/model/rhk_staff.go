package model

import "time"

type RhkStaff struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	JabatanID   uint      `json:"jabatan_id" gorm:"not null"`
	IndikatorID uint      `json:"indikator_id" gorm:"not null"`
	InstansiID  uint      `json:"instansi_id" gorm:"not null"`
	Uraian      string    `json:"uraian" gorm:"type:text;not null"`
	Nilai       *float64  `json:"nilai"`
	Tahun       int       `json:"tahun" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relasi
	Jabatan   Jabatan   `json:"jabatan" gorm:"foreignKey:JabatanID;constraint:OnDelete:CASCADE"`
	Indikator Indikator `json:"indikator" gorm:"foreignKey:IndikatorID;constraint:OnDelete:CASCADE"`
	Instansi  Instansi  `json:"instansi" gorm:"foreignKey:InstansiID;constraint:OnDelete:CASCADE"`
}

func (RhkStaff) TableName() string {
	return "rhk_staff"
}
