package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
)

type InstansiRepository interface {
	GetAll() ([]model.Instansi, error)
	GetByID(id uint) (*model.Instansi, error)
	Create(instansi *model.Instansi) error
	Update(instansi *model.Instansi) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
	NamaExists(nama string, excludeID uint) (bool, error)
}

type instansiRepository struct {
	db *gorm.DB
}

func NewInstansiRepository(db *gorm.DB) InstansiRepository {
	return &instansiRepository{db}
}

func (r *instansiRepository) GetAll() ([]model.Instansi, error) {
	var list []model.Instansi
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *instansiRepository) GetByID(id uint) (*model.Instansi, error) {
	var instansi model.Instansi
	err := r.db.First(&instansi, id).Error
	return &instansi, err
}

func (r *instansiRepository) Create(instansi *model.Instansi) error {
	return r.db.Create(instansi).Error
}

func (r *instansiRepository) Update(instansi *model.Instansi) error {
	return r.db.Save(instansi).Error
}

// Delete menghapus instansi beserta seluruh turunannya (uraian tugas,
// RHK staff, RHK pejabat, indikator) dalam satu transaksi. FK milik user
// di-null-kan, bukan ikut terhapus.
func (r *instansiRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var instansi model.Instansi
		if err := tx.First(&instansi, id).Error; err != nil {
			return err
		}

		indikatorIDs := tx.Model(&model.Indikator{}).Select("id").Where("instansi_id = ?", id)
		rhkStaffIDs := tx.Model(&model.RhkStaff{}).Select("id").Where("instansi_id = ?", id)

		if err := tx.Where("instansi_id = ?", id).
			Or("indikator_id IN (?)", indikatorIDs).
			Or("rhk_staff_id IN (?)", rhkStaffIDs).
			Delete(&model.UraianTugas{}).Error; err != nil {
			return err
		}

		indikatorIDs = tx.Model(&model.Indikator{}).Select("id").Where("instansi_id = ?", id)
		if err := tx.Where("instansi_id = ?", id).
			Or("indikator_id IN (?)", indikatorIDs).
			Delete(&model.RhkStaff{}).Error; err != nil {
			return err
		}

		if err := tx.Where("instansi_id = ?", id).Delete(&model.RhkPejabat{}).Error; err != nil {
			return err
		}
		if err := tx.Where("instansi_id = ?", id).Delete(&model.Indikator{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("instansi_id = ?", id).
			Update("instansi_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Instansi{}, id).Error
	})
}

func (r *instansiRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Instansi{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *instansiRepository) NamaExists(nama string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.Instansi{}).Where("nama = ?", nama)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
