package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

// CatalogService covers the simple restaurant/menu management the checkout
// rules depend on: open/closed restaurants and available variations.
type CatalogService struct {
	DB      *gorm.DB
	Catalog *repository.CatalogRepository
}

func NewCatalogService(db *gorm.DB, catalog *repository.CatalogRepository) *CatalogService {
	return &CatalogService{DB: db, Catalog: catalog}
}

type CreateRestaurantIn struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}

type CreateMenuItemIn struct {
	Name   string `json:"name" binding:"required"`
	Detail string `json:"detail"`
}

type CreateVariationIn struct {
	Label          string          `json:"label" binding:"required"`
	Price          decimal.Decimal `json:"price" binding:"required"`
	CookingMinutes int             `json:"cookingMinutes" binding:"required,min=1"`
}

func (s *CatalogService) CreateRestaurant(in *CreateRestaurantIn) (*entity.Restaurant, error) {
	rest := &entity.Restaurant{Name: in.Name, Address: in.Address, Open: true}
	if err := s.Catalog.CreateRestaurant(s.DB, rest); err != nil {
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) ListRestaurants() ([]entity.Restaurant, error) {
	return s.Catalog.ListRestaurants()
}

func (s *CatalogService) GetRestaurant(id uint) (*entity.Restaurant, error) {
	rest, err := s.Catalog.FindRestaurant(s.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("RESTAURANT_NOT_FOUND", "Restaurant not found")
		}
		return nil, err
	}
	return rest, nil
}

func (s *CatalogService) SetRestaurantOpen(id uint, open bool) error {
	ok, err := s.Catalog.SetRestaurantOpen(s.DB, id, open)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.BadRequest("RESTAURANT_NOT_FOUND", "Restaurant not found")
	}
	return nil
}

func (s *CatalogService) CreateMenuItem(restaurantID uint, in *CreateMenuItemIn) (*entity.MenuItem, error) {
	if _, err := s.GetRestaurant(restaurantID); err != nil {
		return nil, err
	}
	item := &entity.MenuItem{RestaurantID: restaurantID, Name: in.Name, Detail: in.Detail}
	if err := s.Catalog.CreateMenuItem(s.DB, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CatalogService) CreateVariation(menuItemID uint, in *CreateVariationIn) (*entity.MenuVariation, error) {
	if _, err := s.Catalog.FindMenuItem(s.DB, menuItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("MENU_ITEM_NOT_FOUND", "Menu item not found")
		}
		return nil, err
	}
	v := &entity.MenuVariation{
		MenuItemID:     menuItemID,
		Label:          in.Label,
		Price:          in.Price,
		CookingMinutes: in.CookingMinutes,
		Available:      true,
	}
	if err := s.Catalog.CreateVariation(s.DB, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *CatalogService) SetVariationAvailability(id uint, available bool) error {
	ok, err := s.Catalog.SetVariationAvailability(s.DB, id, available)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.BadRequest("VARIATION_NOT_FOUND", "Variation not found")
	}
	return nil
}
