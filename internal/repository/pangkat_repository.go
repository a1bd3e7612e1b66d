package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
)

type PangkatRepository interface {
	GetAll() ([]model.Pangkat, error)
	GetByID(id uint) (*model.Pangkat, error)
	Create(pangkat *model.Pangkat) error
	Update(pangkat *model.Pangkat) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}

type pangkatRepository struct {
	db *gorm.DB
}

func NewPangkatRepository(db *gorm.DB) PangkatRepository {
	return &pangkatRepository{db}
}

func (r *pangkatRepository) GetAll() ([]model.Pangkat, error) {
	var list []model.Pangkat
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *pangkatRepository) GetByID(id uint) (*model.Pangkat, error) {
	var pangkat model.Pangkat
	err := r.db.First(&pangkat, id).Error
	return &pangkat, err
}

func (r *pangkatRepository) Create(pangkat *model.Pangkat) error {
	return r.db.Create(pangkat).Error
}

func (r *pangkatRepository) Update(pangkat *model.Pangkat) error {
	return r.db.Save(pangkat).Error
}

// Delete menghapus pangkat; pangkat_id milik user di-null-kan.
func (r *pangkatRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var pangkat model.Pangkat
		if err := tx.First(&pangkat, id).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("pangkat_id = ?", id).
			Update("pangkat_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Pangkat{}, id).Error
	})
}

func (r *pangkatRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Pangkat{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
