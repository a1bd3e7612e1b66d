package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IndikatorRepository interface {
	GetAll() ([]model.Indikator, error)
	GetByID(id uint) (*model.Indikator, error)
	Create(indikator *model.Indikator) error
	Update(indikator *model.Indikator) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
}

type indikatorRepository struct {
	db *gorm.DB
}

func NewIndikatorRepository(db *gorm.DB) IndikatorRepository {
	return &indikatorRepository{db}
}

func (r *indikatorRepository) GetAll() ([]model.Indikator, error) {
	var list []model.Indikator
	err := r.db.Preload("Instansi").Order("id").Find(&list).Error
	return list, err
}

func (r *indikatorRepository) GetByID(id uint) (*model.Indikator, error) {
	var indikator model.Indikator
	err := r.db.Preload("Instansi").First(&indikator, id).Error
	return &indikator, err
}

func (r *indikatorRepository) Create(indikator *model.Indikator) error {
	return r.db.Omit(clause.Associations).Create(indikator).Error
}

func (r *indikatorRepository) Update(indikator *model.Indikator) error {
	return r.db.Omit(clause.Associations).Save(indikator).Error
}

// Delete menghapus indikator berikut RHK staff dan uraian tugas yang
// menunjuk ke indikator ini dalam satu transaksi.
func (r *indikatorRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var indikator model.Indikator
		if err := tx.First(&indikator, id).Error; err != nil {
			return err
		}

		rhkStaffIDs := tx.Model(&model.RhkStaff{}).Select("id").Where("indikator_id = ?", id)
		if err := tx.Where("indikator_id = ?", id).
			Or("rhk_staff_id IN (?)", rhkStaffIDs).
			Delete(&model.UraianTugas{}).Error; err != nil {
			return err
		}
		if err := tx.Where("indikator_id = ?", id).Delete(&model.RhkStaff{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Indikator{}, id).Error
	})
}

func (r *indikatorRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Indikator{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
