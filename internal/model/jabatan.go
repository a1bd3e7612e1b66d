package model

import "time"

type Jabatan struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Kode      string    `json:"kode" gorm:"size:50;uniqueIndex;not null"`
	Nama      string    `json:"nama" gorm:"size:255;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Jabatan) TableName() string {
	return "jabatan"
}
