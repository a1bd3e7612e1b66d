package model

import "time"

// Jenis pegawai yang dikenal aplikasi.
const (
	JenisPegawaiPNS    = "pns"
	JenisPegawaiNonPNS = "non_pns"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Nama         string    `json:"nama" gorm:"size:255;not null"`
	Username     string    `json:"username" gorm:"size:255;uniqueIndex;not null"`
	Email        *string   `json:"email" gorm:"size:255;uniqueIndex"`
	Password     string    `json:"-" gorm:"size:255;not null"`
	NIP          *string   `json:"nip" gorm:"column:nip;size:255;uniqueIndex"`
	NIK          *string   `json:"nik" gorm:"column:nik;size:255;uniqueIndex"`
	JenisPegawai *string   `json:"jenis_pegawai" gorm:"size:255"`
	NoWA         *string   `json:"no_wa" gorm:"column:no_wa;size:255"`
	JabatanID    *uint     `json:"jabatan_id"`
	PangkatID    *uint     `json:"pangkat_id"`
	IDAtasan     *uint     `json:"id_atasan" gorm:"column:id_atasan"`
	InstansiID   *uint     `json:"instansi_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relasi
	Jabatan  *Jabatan  `json:"jabatan" gorm:"foreignKey:JabatanID;constraint:OnDelete:SET NULL"`
	Pangkat  *Pangkat  `json:"pangkat" gorm:"foreignKey:PangkatID;constraint:OnDelete:SET NULL"`
	Atasan   *User     `json:"atasan" gorm:"foreignKey:IDAtasan;constraint:OnDelete:SET NULL"`
	Instansi *Instansi `json:"instansi" gorm:"foreignKey:InstansiID;constraint:OnDelete:SET NULL"`
}

func (User) TableName() string {
	return "users"
}
