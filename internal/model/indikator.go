package model

import "time"

type Indikator struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	InstansiID uint      `json:"instansi_id" gorm:"not null"`
	Uraian     string    `json:"uraian" gorm:"type:text;not null"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relasi
	Instansi Instansi `json:"instansi" gorm:"foreignKey:InstansiID;constraint:OnDelete:CASCADE"`
}

func (Indikator) TableName() string {
	return "indikator"
}
