package repository

import (
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// FindActiveByUser loads the user's active cart with lines, variations and
// the items that own them (checkout snapshots need the item name).
func (r *CartRepository) FindActiveByUser(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	var c entity.Cart
	err := tx.Where("user_id = ? AND active = ?", userID, true).
		Preload("Lines").
		Preload("Lines.Variation").
		Preload("Lines.Variation.MenuItem").
		First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CartRepository) Create(tx *gorm.DB, c *entity.Cart) error {
	return tx.Create(c).Error
}

func (r *CartRepository) SetRestaurant(tx *gorm.DB, cartID uint, restaurantID *uint) error {
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("restaurant_id", restaurantID).Error
}

// Deactivate flips the cart inactive; the active guard in the WHERE makes a
// concurrent double-checkout lose with zero rows affected.
func (r *CartRepository) Deactivate(tx *gorm.DB, cartID uint) (bool, error) {
	res := tx.Model(&entity.Cart{}).
		Where("id = ? AND active = ?", cartID, true).
		Update("active", false)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Lines ----------------

func (r *CartRepository) FindLine(tx *gorm.DB, lineID uint) (*entity.CartLine, error) {
	var l entity.CartLine
	if err := tx.Preload("Cart").First(&l, lineID).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *CartRepository) FindLineByVariation(tx *gorm.DB, cartID, variationID uint) (*entity.CartLine, error) {
	var l entity.CartLine
	err := tx.Where("cart_id = ? AND variation_id = ?", cartID, variationID).First(&l).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *CartRepository) SaveLine(tx *gorm.DB, l *entity.CartLine) error {
	return tx.Save(l).Error
}

func (r *CartRepository) CreateLine(tx *gorm.DB, l *entity.CartLine) error {
	return tx.Create(l).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, lineID uint) error {
	return tx.Delete(&entity.CartLine{}, lineID).Error
}

func (r *CartRepository) DeleteLines(tx *gorm.DB, cartID uint) error {
	return tx.Where("cart_id = ?", cartID).Delete(&entity.CartLine{}).Error
}

func (r *CartRepository) CountLines(tx *gorm.DB, cartID uint) (int64, error) {
	var cnt int64
	err := tx.Model(&entity.CartLine{}).Where("cart_id = ?", cartID).Count(&cnt).Error
	return cnt, err
}
