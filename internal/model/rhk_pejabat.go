package model

import "time"

type RhkPejabat struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	JabatanID  uint      `json:"jabatan_id" gorm:"not null"`
	InstansiID uint      `json:"instansi_id" gorm:"not null"`
	Uraian     string    `json:"uraian" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relasi
	Jabatan  Jabatan  `json:"jabatan" gorm:"foreignKey:JabatanID;constraint:OnDelete:CASCADE"`
	Instansi Instansi `json:"instansi" gorm:"foreignKey:InstansiID;constraint:OnDelete:CASCADE"`
}

func (RhkPejabat) TableName() string {
	return "rhk_pejabat"
}
