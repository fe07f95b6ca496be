package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) FindByID(tx *gorm.DB, id uint) (*entity.User, error) {
	var u entity.User
	if err := tx.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(tx *gorm.DB, email string) (*entity.User, error) {
	var u entity.User
	if err := tx.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ExistsByEmail(tx *gorm.DB, email string) (bool, error) {
	var cnt int64
	if err := tx.Model(&entity.User{}).Where("email = ?", email).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *UserRepository) Create(tx *gorm.DB, u *entity.User) error {
	return tx.Create(u).Error
}

func (r *UserRepository) Save(tx *gorm.DB, u *entity.User) error {
	return tx.Save(u).Error
}

func (r *UserRepository) List(role string, page, limit int) ([]entity.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 200 {
		limit = 20
	}

	q := r.DB.Model(&entity.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := q.Order("id").Limit(limit).Offset((page - 1) * limit).Find(&users).Error
	return users, total, err
}

// ---------------- Versions ----------------

func (r *UserRepository) CreateVersion(tx *gorm.DB, v *entity.UserVersion) error {
	return tx.Create(v).Error
}

// LatestVersionAt returns the newest snapshot taken at or before t.
func (r *UserRepository) LatestVersionAt(userID uint, t time.Time) (*entity.UserVersion, error) {
	var v entity.UserVersion
	err := r.DB.Where("user_id = ? AND version_at <= ?", userID, t).
		Order("version_at DESC").
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}
