package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

// Orders below this total are rejected at checkout.
var minOrderTotal = decimal.NewFromInt(300)

type OrderService struct {
	DB      *gorm.DB
	Orders  *repository.OrderRepository
	Carts   *repository.CartRepository
	Users   *repository.UserRepository
	CartSvc *CartService
}

func NewOrderService(db *gorm.DB, orders *repository.OrderRepository,
	carts *repository.CartRepository, users *repository.UserRepository,
	cartSvc *CartService) *OrderService {
	return &OrderService{DB: db, Orders: orders, Carts: carts, Users: users, CartSvc: cartSvc}
}

// CreateFromCart converts the user's active cart into an order. All checks
// and writes run in one transaction; any failure leaves the cart untouched.
func (s *OrderService) CreateFromCart(userID uint) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := s.Users.FindByID(tx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("USER_NOT_FOUND", "User not found")
			}
			return err
		}

		cart, err := s.Carts.FindActiveByUser(tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("ACTIVE_CART_NOT_FOUND", "Active cart not found")
			}
			return err
		}

		if len(cart.Lines) == 0 {
			return apperr.Conflict("EMPTY_CART", "Cannot create order without items")
		}

		// Catalog state may have changed since the items were added.
		for _, l := range cart.Lines {
			if !l.Variation.Available {
				return apperr.Conflict("VARIATION_UNAVAILABLE",
					fmt.Sprintf("Variation %q is unavailable", l.Variation.Label))
			}
		}

		total := s.CartSvc.Subtotal(cart)
		if total.LessThan(minOrderTotal) {
			return apperr.Conflict("MIN_TOTAL_NOT_REACHED", "Minimum order total is 300")
		}

		order := &entity.Order{
			UserID:     userID,
			Status:     entity.OrderNew,
			Total:      total,
			EtaMinutes: s.CartSvc.EtaMinutes(cart),
		}
		if err := s.Orders.Create(tx, order); err != nil {
			return err
		}

		for i := range cart.Lines {
			line := entity.NewOrderLine(order.ID, *cart.RestaurantID, &cart.Lines[i])
			if err := s.Orders.CreateLine(tx, line); err != nil {
				return err
			}
		}

		ok, err := s.Carts.Deactivate(tx, cart.ID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Conflict("CONCURRENT_MODIFICATION", "Cart was checked out concurrently")
		}

		out, err = s.Orders.FindByID(tx, order.ID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns an order or ORDER_NOT_FOUND.
func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	o, err := s.Orders.FindByID(s.DB, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}
	return o, nil
}

// List filters by user and/or status.
func (s *OrderService) List(userID *uint, status *entity.OrderStatus, page, limit int) ([]entity.Order, int64, error) {
	if status != nil && !status.Valid() {
		return nil, 0, apperr.BadRequest("BAD_STATUS", "Unknown order status")
	}
	return s.Orders.List(userID, status, page, limit)
}

// ChangeStatus applies one transition under the table in entity.OrderStatus.
// Re-applying the current status is a successful no-op.
func (s *OrderService) ChangeStatus(orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		out, err = s.changeStatusTx(tx, orderID, to)
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *OrderService) changeStatusTx(tx *gorm.DB, orderID uint, to entity.OrderStatus) (*entity.Order, error) {
	if !to.Valid() {
		return nil, apperr.BadRequest("BAD_STATUS", "Unknown order status")
	}

	o, err := s.Orders.FindByID(tx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.BadRequest("ORDER_NOT_FOUND", "Order not found")
		}
		return nil, err
	}

	if o.Status == to {
		return o, nil
	}

	switch {
	case to == entity.OrderCancelled:
		if o.Status == entity.OrderDelivered {
			return nil, apperr.Conflict("CANNOT_CANCEL_DELIVERED", "Delivered order cannot be cancelled")
		}
	case to == entity.OrderNew:
		return nil, apperr.Conflict("BAD_TRANSITION", "Cannot return to NEW")
	case !o.Status.CanTransitionTo(to):
		return nil, apperr.Conflict("BAD_TRANSITION",
			fmt.Sprintf("Cannot move order from %s to %s", o.Status, to))
	}

	ok, err := s.Orders.UpdateStatusCAS(tx, o.ID, o.Version, to)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.Conflict("CONCURRENT_MODIFICATION", "Order was modified concurrently")
	}

	o.Status = to
	o.Version++
	return o, nil
}

// Cancel is an alias for a CANCELLED transition.
func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	return s.ChangeStatus(orderID, entity.OrderCancelled)
}
