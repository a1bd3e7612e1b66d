package repository

import (
	"ekin-backend/internal/model"

	"gorm.io/gorm"
)

type JabatanRepository interface {
	GetAll() ([]model.Jabatan, error)
	GetByID(id uint) (*model.Jabatan, error)
	Create(jabatan *model.Jabatan) error
	Update(jabatan *model.Jabatan) error
	Delete(id uint) error
	ExistsByID(id uint) (bool, error)
	KodeExists(kode string, excludeID uint) (bool, error)
}

type jabatanRepository struct {
	db *gorm.DB
}

func NewJabatanRepository(db *gorm.DB) JabatanRepository {
	return &jabatanRepository{db}
}

func (r *jabatanRepository) GetAll() ([]model.Jabatan, error) {
	var list []model.Jabatan
	err := r.db.Order("id").Find(&list).Error
	return list, err
}

func (r *jabatanRepository) GetByID(id uint) (*model.Jabatan, error) {
	var jabatan model.Jabatan
	err := r.db.First(&jabatan, id).Error
	return &jabatan, err
}

func (r *jabatanRepository) Create(jabatan *model.Jabatan) error {
	return r.db.Create(jabatan).Error
}

func (r *jabatanRepository) Update(jabatan *model.Jabatan) error {
	return r.db.Save(jabatan).Error
}

// Delete menghapus jabatan berikut RHK pejabat dan RHK staff miliknya
// (plus uraian tugas yang menunjuk RHK staff tersebut) dalam satu transaksi.
func (r *jabatanRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var jabatan model.Jabatan
		if err := tx.First(&jabatan, id).Error; err != nil {
			return err
		}

		rhkStaffIDs := tx.Model(&model.RhkStaff{}).Select("id").Where("jabatan_id = ?", id)
		if err := tx.Where("rhk_staff_id IN (?)", rhkStaffIDs).
			Delete(&model.UraianTugas{}).Error; err != nil {
			return err
		}
		if err := tx.Where("jabatan_id = ?", id).Delete(&model.RhkStaff{}).Error; err != nil {
			return err
		}
		if err := tx.Where("jabatan_id = ?", id).Delete(&model.RhkPejabat{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.User{}).Where("jabatan_id = ?", id).
			Update("jabatan_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Jabatan{}, id).Error
	})
}

func (r *jabatanRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Jabatan{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *jabatanRepository) KodeExists(kode string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.Jabatan{}).Where("kode = ?", kode)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}
