package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

// Flat load constant added on top of the weighted cooking time.
const courierLoadMinutes = 10

type CartService struct {
	DB      *gorm.DB
	Carts   *repository.CartRepository
	Catalog *repository.CatalogRepository
	Users   *repository.UserRepository
}

func NewCartService(db *gorm.DB, carts *repository.CartRepository,
	catalog *repository.CatalogRepository, users *repository.UserRepository) *CartService {
	return &CartService{DB: db, Carts: carts, Catalog: catalog, Users: users}
}

// FindActiveCart returns the user's active cart or gorm.ErrRecordNotFound.
func (s *CartService) FindActiveCart(userID uint) (*entity.Cart, error) {
	return s.Carts.FindActiveByUser(s.DB, userID)
}

// GetOrCreateActiveCart returns the user's active cart, creating an empty one
// if none exists. Concurrent first-time creation is resolved by the partial
// unique index: the loser re-reads the winner's cart.
func (s *CartService) GetOrCreateActiveCart(userID uint) (*entity.Cart, error) {
	return s.getOrCreateActiveCart(s.DB, userID)
}

func (s *CartService) getOrCreateActiveCart(tx *gorm.DB, userID uint) (*entity.Cart, error) {
	cart, err := s.Carts.FindActiveByUser(tx, userID)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if _, err := s.Users.FindByID(tx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	cart = &entity.Cart{UserID: userID, Active: true}
	if err := s.Carts.Create(tx, cart); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return s.Carts.FindActiveByUser(tx, userID)
		}
		return nil, err
	}
	return cart, nil
}

// AddItem puts a variation into the cart, binding the cart to the variation's
// restaurant on first add and merging quantities for repeated variations.
func (s *CartService) AddItem(userID, variationID uint, quantity int) (*entity.Cart, error) {
	if quantity <= 0 {
		return nil, apperr.BadRequest("BAD_QUANTITY", "quantity must be a positive integer")
	}

	var out *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreateActiveCart(tx, userID)
		if err != nil {
			return err
		}

		v, err := s.Catalog.FindVariation(tx, variationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("VARIATION_NOT_FOUND", "Variation not found")
			}
			return err
		}
		if !v.Available {
			return apperr.Conflict("VARIATION_UNAVAILABLE", "Variation is not available for ordering")
		}

		restaurant := v.MenuItem.Restaurant
		if !restaurant.Open {
			return apperr.Conflict("RESTAURANT_CLOSED", "Restaurant is closed")
		}

		if cart.RestaurantID == nil {
			id := restaurant.ID
			cart.RestaurantID = &id
			if err := s.Carts.SetRestaurant(tx, cart.ID, &id); err != nil {
				return err
			}
		} else if *cart.RestaurantID != restaurant.ID {
			return apperr.Conflict("CART_OTHER_RESTAURANT", "Cart may only contain items from one restaurant")
		}

		line, err := s.Carts.FindLineByVariation(tx, cart.ID, v.ID)
		switch {
		case err == nil:
			line.Quantity += quantity
			if err := s.Carts.SaveLine(tx, line); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = &entity.CartLine{CartID: cart.ID, VariationID: v.ID, Quantity: quantity}
			if err := s.Carts.CreateLine(tx, line); err != nil {
				return err
			}
		default:
			return err
		}

		out, err = s.Carts.FindActiveByUser(tx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateLineQuantity sets a line's quantity; zero or less removes the line.
func (s *CartService) UpdateLineQuantity(lineID uint, quantity int) (*entity.Cart, error) {
	var out *entity.Cart
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		line, err := s.Carts.FindLine(tx, lineID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("CART_LINE_NOT_FOUND", "Cart line not found")
			}
			return err
		}

		if quantity <= 0 {
			if err := s.removeLine(tx, line); err != nil {
				return err
			}
		} else {
			line.Quantity = quantity
			if err := s.Carts.SaveLine(tx, line); err != nil {
				return err
			}
		}

		out, err = s.Carts.FindActiveByUser(tx, line.Cart.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveLine deletes a line outright.
func (s *CartService) RemoveLine(lineID uint) (*entity.Cart, error) {
	return s.UpdateLineQuantity(lineID, 0)
}

// removeLine deletes the line and, if the cart went empty, clears its
// restaurant binding so the next add may pick any restaurant.
func (s *CartService) removeLine(tx *gorm.DB, line *entity.CartLine) error {
	if err := s.Carts.DeleteLine(tx, line.ID); err != nil {
		return err
	}
	cnt, err := s.Carts.CountLines(tx, line.CartID)
	if err != nil {
		return err
	}
	if cnt == 0 {
		return s.Carts.SetRestaurant(tx, line.CartID, nil)
	}
	return nil
}

// Clear empties the cart; it stays active.
func (s *CartService) Clear(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		cart, err := s.getOrCreateActiveCart(tx, userID)
		if err != nil {
			return err
		}
		if err := s.Carts.DeleteLines(tx, cart.ID); err != nil {
			return err
		}
		return s.Carts.SetRestaurant(tx, cart.ID, nil)
	})
}

// Subtotal is the exact decimal sum of price × quantity over the lines.
func (s *CartService) Subtotal(cart *entity.Cart) decimal.Decimal {
	total := decimal.Zero
	for _, l := range cart.Lines {
		total = total.Add(l.Variation.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// EtaMinutes is the quantity-weighted average cooking time (integer division,
// truncating) plus the courier load constant; 0 for an empty cart.
func (s *CartService) EtaMinutes(cart *entity.Cart) int {
	totalQty := 0
	weighted := 0
	for _, l := range cart.Lines {
		totalQty += l.Quantity
		weighted += l.Variation.CookingMinutes * l.Quantity
	}
	if totalQty == 0 {
		return 0
	}
	return weighted/totalQty + courierLoadMinutes
}
