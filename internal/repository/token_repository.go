package repository

import (
	"time"

	"ekin-backend/internal/model"

	"gorm.io/gorm"
)

// TokenRepository menyimpan token yang sudah dicabut (logout).
type TokenRepository interface {
	Blacklist(tokenHash string, expiredAt time.Time) error
	IsBlacklisted(tokenHash string) (bool, error)
}

type tokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) TokenRepository {
	return &tokenRepository{db}
}

func (r *tokenRepository) Blacklist(tokenHash string, expiredAt time.Time) error {
	// Logout dua kali dengan token yang sama bukan error.
	row := model.TokenBlacklist{TokenHash: tokenHash, ExpiredAt: expiredAt}
	return r.db.Where(model.TokenBlacklist{TokenHash: tokenHash}).
		FirstOrCreate(&row).Error
}

func (r *tokenRepository) IsBlacklisted(tokenHash string) (bool, error) {
	var count int64
	err := r.db.Model(&model.TokenBlacklist{}).
		Where("token_hash = ? AND expired_at > ?", tokenHash, time.Now()).
		Count(&count).Error
	return count > 0, err
}
