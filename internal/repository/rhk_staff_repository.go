package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RhkStaffRepository interface {
	GetAll() ([]model.RhkStaff, error)
	GetByID(id uint) (*model.RhkStaff, error)
	Create(rhk *model.RhkStaff) error
	Update(rhk *model.RhkStaff) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}

type rhkStaffRepository struct {
	db *gorm.DB
}

func NewRhkStaffRepository(db *gorm.DB) RhkStaffRepository {
	return &rhkStaffRepository{db}
}

func (r *rhkStaffRepository) GetAll() ([]model.RhkStaff, error) {
	var list []model.RhkStaff
	err := r.db.Preload("Jabatan").Preload("Indikator").Preload("Instansi").
		Order("id").Find(&list).Error
	return list, err
}

func (r *rhkStaffRepository) GetByID(id uint) (*model.RhkStaff, error) {
	var rhk model.RhkStaff
	err := r.db.Preload("Jabatan").Preload("Indikator").Preload("Instansi").
		First(&rhk, id).Error
	return &rhk, err
}

func (r *rhkStaffRepository) Create(rhk *model.RhkStaff) error {
	return r.db.Omit(clause.Associations).Create(rhk).Error
}

func (r *rhkStaffRepository) Update(rhk *model.RhkStaff) error {
	return r.db.Omit(clause.Associations).Save(rhk).Error
}

// Delete menghapus RHK staff berikut uraian tugas miliknya dalam satu
// transaksi.
func (r *rhkStaffRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var rhk model.RhkStaff
		if err := tx.First(&rhk, id).Error; err != nil {
			return err
		}
		if err := tx.Where("rhk_staff_id = ?", id).Delete(&model.UraianTugas{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.RhkStaff{}, id).Error
	})
}

func (r *rhkStaffRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.RhkStaff{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
