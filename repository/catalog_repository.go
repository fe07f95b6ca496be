package repository

import (
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
)

// CatalogRepository resolves restaurants, menu items and variations. The cart
// and order services only ever read through it.
type CatalogRepository struct{ DB *gorm.DB }

func NewCatalogRepository(db *gorm.DB) *CatalogRepository { return &CatalogRepository{DB: db} }

// FindVariation loads a variation together with its item and owning
// restaurant, which the cart rules need in one shot.
func (r *CatalogRepository) FindVariation(tx *gorm.DB, id uint) (*entity.MenuVariation, error) {
	var v entity.MenuVariation
	err := tx.Preload("MenuItem.Restaurant").First(&v, id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *CatalogRepository) FindRestaurant(tx *gorm.DB, id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := tx.First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *CatalogRepository) ListRestaurants() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *CatalogRepository) CreateRestaurant(tx *gorm.DB, rest *entity.Restaurant) error {
	return tx.Create(rest).Error
}

func (r *CatalogRepository) SetRestaurantOpen(tx *gorm.DB, id uint, open bool) (bool, error) {
	res := tx.Model(&entity.Restaurant{}).Where("id = ?", id).Update("open", open)
	return res.RowsAffected == 1, res.Error
}

func (r *CatalogRepository) FindMenuItem(tx *gorm.DB, id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := tx.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CatalogRepository) CreateMenuItem(tx *gorm.DB, item *entity.MenuItem) error {
	return tx.Create(item).Error
}

func (r *CatalogRepository) CreateVariation(tx *gorm.DB, v *entity.MenuVariation) error {
	return tx.Create(v).Error
}

func (r *CatalogRepository) SetVariationAvailability(tx *gorm.DB, id uint, available bool) (bool, error) {
	res := tx.Model(&entity.MenuVariation{}).Where("id = ?", id).Update("available", available)
	return res.RowsAffected == 1, res.Error
}
