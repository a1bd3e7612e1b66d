package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	GetAll() ([]model.User, error)
	GetByID(id uint) (*model.User, error)
	GetByUsername(username string) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
	UsernameExists(username string, excludeID uint) (bool, error)
	EmailExists(email string, excludeID uint) (bool, error)
	NIPExists(nip string, excludeID uint) (bool, error)
	NIKExists(nik string, excludeID uint) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db}
}

func (r *userRepository) GetAll() ([]model.User, error) {
	var list []model.User
	err := r.db.Preload("Jabatan").Preload("Pangkat").Preload("Instansi").Preload("Atasan").
		Order("id").Find(&list).Error
	return list, err
}

func (r *userRepository) GetByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.Preload("Jabatan").Preload("Pangkat").Preload("Instansi").Preload("Atasan").
		First(&user, id).Error
	return &user, err
}

func (r *userRepository) GetByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *userRepository) Create(user *model.User) error {
	return r.db.Omit(clause.Associations).Create(user).Error
}

func (r *userRepository) Update(user *model.User) error {
	return r.db.Omit(clause.Associations).Save(user).Error
}

// Delete menghapus user; user lain yang menjadikannya atasan tetap hidup,
// hanya id_atasan-nya yang di-null-kan.
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("id_atasan = ?", id).
			Update("id_atasan", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
}

func (r *userRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.User{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *userRepository) UsernameExists(username string, excludeID uint) (bool, error) {
	return r.columnExists("username", username, excludeID)
}

func (r *userRepository) EmailExists(email string, excludeID uint) (bool, error) {
	return r.columnExists("email", email, excludeID)
}

func (r *userRepository) NIPExists(nip string, excludeID uint) (bool, error) {
	return r.columnExists("nip", nip, excludeID)
}

func (r *userRepository) NIKExists(nik string, excludeID uint) (bool, error) {
	return r.columnExists("nik", nik, excludeID)
}

func (r *userRepository) columnExists(column, value string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.User{}).Where(column+" = ?", value)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
