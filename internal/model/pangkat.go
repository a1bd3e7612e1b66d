package model

import "time"

type Pangkat struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nama      string    `json:"nama" gorm:"size:255;not null"`
	Golongan  string    `json:"golongan" gorm:"size:10;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Pangkat) TableName() string {
	return "pangkat"
}
