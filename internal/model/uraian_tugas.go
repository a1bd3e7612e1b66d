package model

import "time"

type UraianTugas struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	IndikatorID uint      `json:"indikator_id" gorm:"not null"`
	RhkStaffID  uint      `json:"rhk_staff_id" gorm:"not null"`
	InstansiID  uint      `json:"instansi_id" gorm:"not null"`
	Uraian      string    `json:"uraian" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relasi
	Indikator Indikator `json:"indikator" gorm:"foreignKey:IndikatorID;constraint:OnDelete:CASCADE"`
	RhkStaff  RhkStaff  `json:"rhk_staff" gorm:"foreignKey:RhkStaffID;constraint:OnDelete:CASCADE"`
	Instansi  Instansi  `json:"instansi" gorm:"foreignKey:InstansiID;constraint:OnDelete:CASCADE"`
}

func (UraianTugas) TableName() string {
	return "uraian_tugas"
}
