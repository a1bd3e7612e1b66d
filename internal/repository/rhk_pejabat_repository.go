package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RhkPejabatRepository interface {
	GetAll() ([]model.RhkPejabat, error)
	GetByID(id uint) (*model.RhkPejabat, error)
	Create(rhk *model.RhkPejabat) error
	Update(rhk *model.RhkPejabat) error
	Delete(id uint) error
}

type rhkPejabatRepository struct {
	db *gorm.DB
}

func NewRhkPejabatRepository(db *gorm.DB) RhkPejabatRepository {
	return &rhkPejabatRepository{db}
}

func (r *rhkPejabatRepository) GetAll() ([]model.RhkPejabat, error) {
	var list []model.RhkPejabat
	err := r.db.Preload("Jabatan").Preload("Instansi").Order("id").Find(&list).Error
	return list, err
}

func (r *rhkPejabatRepository) GetByID(id uint) (*model.RhkPejabat, error) {
	var rhk model.RhkPejabat
	err := r.db.Preload("Jabatan").Preload("Instansi").First(&rhk, id).Error
	return &rhk, err
}

func (r *rhkPejabatRepository) Create(rhk *model.RhkPejabat) error {
	return r.db.Omit(clause.Associations).Create(rhk).Error
}

func (r *rhkPejabatRepository) Update(rhk *model.RhkPejabat) error {
	return r.db.Omit(clause.Associations).Save(rhk).Error
}

func (r *rhkPejabatRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rhk model.RhkPejabat
		if err := tx.First(&rhk, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RhkPejabat{}, id).Error
	})
}
