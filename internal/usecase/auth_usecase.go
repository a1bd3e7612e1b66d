package usecase

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"ekin-backend/internal/model"
	"ekin-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("username atau password salah")

type AuthUsecase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
	secret []byte
}

func NewAuthUsecase(users repository.UserRepository, tokens repository.TokenRepository, secret []byte) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens, secret: secret}
}

// Login memverifikasi username+password dan mengembalikan token JWT 24 jam.
func (u *AuthUsecase) Login(username, password string) (string, *model.User, error) {
	user, err := u.users.GetByUsername(username)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(u.secret)
	if err != nil {
		return "", nil, err
	}

	return signed, user, nil
}

// Logout mencabut token dengan menyimpan HMAC-nya di blacklist sampai
// token itu sendiri kadaluwarsa.
func (u *AuthUsecase) Logout(rawToken string) error {
	expiredAt := time.Now().Add(time.Hour * 24)
	token, _, err := jwt.NewParser().ParseUnverified(rawToken, jwt.MapClaims{})
	if err == nil {
		if exp, expErr := token.Claims.GetExpirationTime(); expErr == nil && exp != nil {
			expiredAt = exp.Time
		}
	}
	return u.tokens.Blacklist(HashToken(rawToken, u.secret), expiredAt)
}

// HashToken menghasilkan HMAC-SHA256 hex dari token mentah; token asli
// tidak pernah disimpan di database.
func HashToken(rawToken string, secret []byte) string {
	m := hmac.New(sha256.New, secret)
	m.Write([]byte(rawToken))
	return hex.EncodeToString(m.Sum(nil))
}
