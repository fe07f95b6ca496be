package repository

import (
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

type PaymentRepository struct{ DB *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{DB: db} }

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Payment) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) FindByID(tx *gorm.DB, id uint) (*entity.Payment, error) {
	var p entity.Payment
	if err := tx.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) ExistsByExternalID(tx *gorm.DB, externalID string) (bool, error) {
	var cnt int64
	err := tx.Model(&entity.Payment{}).Where("external_id = ?", externalID).Count(&cnt).Error
	return cnt > 0, err
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]entity.Payment, error) {
	var out []entity.Payment
	err := r.DB.Where("order_id = ?", orderID).Order("id").Find(&out).Error
	return out, err
}

// UpdateStatusCAS mirrors the order-side discipline: status writes race with
// other callbacks and must not overwrite each other silently.
func (r *PaymentRepository) UpdateStatusCAS(tx *gorm.DB, paymentID uint, version int64, to entity.PaymentStatus) (bool, error) {
	res := tx.Model(&entity.Payment{}).
		Where("id = ? AND version = ?", paymentID, version).
		Updates(map[string]any{"status": to, "version": version + 1})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
