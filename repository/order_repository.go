package repository

import (
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateLine(tx *gorm.DB, l *entity.OrderLine) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) FindByID(tx *gorm.DB, id uint) (*entity.Order, error) {
	var o entity.Order
	if err := tx.Preload("Lines").First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// List filters by user and/or status, newest first, with teacher-style
// page/limit clamping.
func (r *OrderRepository) List(userID *uint, status *entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.Order{})
	if userID != nil {
		q = q.Where("user_id = ?", *userID)
	}
	if status != nil {
		q = q.Where("status = ?", *status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var out []entity.Order
	err := q.Preload("Lines").Order("id DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

// UpdateStatusCAS writes the status only if the version counter is untouched.
// Zero rows affected means a concurrent writer got there first.
func (r *OrderRepository) UpdateStatusCAS(tx *gorm.DB, orderID uint, version int64, to entity.OrderStatus) (bool, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND version = ?", orderID, version).
		Updates(map[string]any{"status": to, "version": version + 1})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
