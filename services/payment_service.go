package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

type PaymentService struct {
	DB       *gorm.DB
	Payments *repository.PaymentRepository
	Orders   *repository.OrderRepository
	OrderSvc *OrderService
}

func NewPaymentService(db *gorm.DB, payments *repository.PaymentRepository,
	orders *repository.OrderRepository, orderSvc *OrderService) *PaymentService {
	return &PaymentService{DB: db, Payments: payments, Orders: orders, OrderSvc: orderSvc}
}

// Create records a PENDING payment attempt against a NEW order. The unique
// index on external_id backs up the duplicate pre-check under concurrency.
func (s *PaymentService) Create(orderID int64, amount decimal.Decimal, externalID *string) (*entity.Payment, error) {
	if orderID <= 0 {
		return nil, apperr.BadRequest("BAD_ORDER_ID", "orderId must be > 0")
	}
	if !amount.IsPositive() {
		return nil, apperr.BadRequest("BAD_AMOUNT", "amount must be > 0")
	}

	var out *entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if externalID != nil && *externalID != "" {
			exists, err := s.Payments.ExistsByExternalID(tx, *externalID)
			if err != nil {
				return err
			}
			if exists {
				return apperr.Conflict("DUPLICATE_EXTERNAL_ID", "Payment with this externalId already exists")
			}
		}

		order, err := s.Orders.FindByID(tx, uint(orderID))
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("ORDER_NOT_FOUND", "Order not found")
			}
			return err
		}

		if order.Status != entity.OrderNew {
			return apperr.Conflict("ORDER_NOT_NEW", "Order must be NEW to create payment")
		}
		if !order.Total.Equal(amount) {
			return apperr.Conflict("AMOUNT_MISMATCH", "Amount doesn't match order total")
		}

		p := &entity.Payment{
			OrderID: order.ID,
			Amount:  amount,
			Status:  entity.PaymentPending,
		}
		if externalID != nil && *externalID != "" {
			p.ExternalID = externalID
		}
		if err := s.Payments.Create(tx, p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Conflict("DUPLICATE_EXTERNAL_ID", "Payment with this externalId already exists")
			}
			return err
		}
		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus records an externally reported payment outcome. An unchanged
// status is a no-op; SUCCESS confirms a NEW order, FAILED cancels the order
// unless it is already DELIVERED or CANCELLED. These are the only
// cross-aggregate side effects in the system.
func (s *PaymentService) UpdateStatus(paymentID uint, newStatus entity.PaymentStatus) (*entity.Payment, error) {
	if !newStatus.Valid() {
		return nil, apperr.BadRequest("BAD_STATUS", "Unknown payment status")
	}

	var out *entity.Payment
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		p, err := s.Payments.FindByID(tx, paymentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.BadRequest("PAYMENT_NOT_FOUND", "Payment not found")
			}
			return err
		}

		if p.Status == newStatus {
			out = p
			return nil
		}

		ok, err := s.Payments.UpdateStatusCAS(tx, p.ID, p.Version, newStatus)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.Conflict("CONCURRENT_MODIFICATION", "Payment was modified concurrently")
		}
		p.Status = newStatus
		p.Version++

		order, err := s.Orders.FindByID(tx, p.OrderID)
		if err != nil {
			return err
		}

		switch newStatus {
		case entity.PaymentSuccess:
			if order.Status == entity.OrderNew {
				if _, err := s.OrderSvc.changeStatusTx(tx, order.ID, entity.OrderConfirmed); err != nil {
					return err
				}
			}
		case entity.PaymentFailed:
			if !order.Status.Terminal() {
				if _, err := s.OrderSvc.changeStatusTx(tx, order.ID, entity.OrderCancelled); err != nil {
					return err
				}
			}
		}

		out = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListByOrder returns all payment attempts for an order.
func (s *PaymentService) ListByOrder(orderID uint) ([]entity.Payment, error) {
	return s.Payments.ListByOrder(orderID)
}
