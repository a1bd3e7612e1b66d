package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UraianTugasRepository interface {
	GetAll() ([]model.UraianTugas, error)
	GetByID(id uint) (*model.UraianTugas, error)
	Create(ut *model.UraianTugas) error
	Update(ut *model.UraianTugas) error
	Delete(id uint) error
}

type uraianTugasRepository struct {
	db *gorm.DB
}

func NewUraianTugasRepository(db *gorm.DB) UraianTugasRepository {
	return &uraianTugasRepository{db}
}

func (r *uraianTugasRepository) GetAll() ([]model.UraianTugas, error) {
	var list []model.UraianTugas
	err := r.db.Preload("Indikator").Preload("RhkStaff").Preload("Instansi").
		Order("id").Find(&list).Error
	return list, err
}

func (r *uraianTugasRepository) GetByID(id uint) (*model.UraianTugas, error) {
	var ut model.UraianTugas
	err := r.db.Preload("Indikator").Preload("RhkStaff").Preload("Instansi").
		First(&ut, id).Error
	return &ut, err
}

func (r *uraianTugasRepository) Create(ut *model.UraianTugas) error {
	return r.db.Omit(clause.Associations).Create(ut).Error
}

func (r *uraianTugasRepository) Update(ut *model.UraianTugas) error {
	return r.db.Omit(clause.Associations).Save(ut).Error
}

func (r *uraianTugasRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var ut model.UraianTugas
		if err := tx.First(&ut, id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.UraianTugas{}, id).Error
	})
}
