package model

import "time"

// TokenBlacklist menyimpan HMAC dari token yang sudah di-logout.
// Baris yang expired_at-nya lewat boleh diabaikan middleware.
type TokenBlacklist struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TokenHash string    `json:"token_hash" gorm:"size:64;uniqueIndex;not null"`
	ExpiredAt time.Time `json:"expired_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (TokenBlacklist) TableName() string {
	return "token_blacklist"
}
