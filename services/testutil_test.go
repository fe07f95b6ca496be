package services

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/apperr"
	"github.com/MavMaver/food-delivery/repository"
)

var testDBSeq atomic.Int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// shared-cache in-memory DB, one per test, so the connection pool sees
	// the same database
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{}, &entity.UserVersion{},
		&entity.Restaurant{}, &entity.MenuItem{}, &entity.MenuVariation{},
		&entity.Cart{}, &entity.CartLine{},
		&entity.Order{}, &entity.OrderLine{},
		&entity.Payment{},
	))
	return db
}

type fixture struct {
	db         *gorm.DB
	orderRepo  *repository.OrderRepository
	cartSvc    *CartService
	orderSvc   *OrderService
	paymentSvc *PaymentService
}

func newFixture(t *testing.T) *fixture {
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	cartSvc := NewCartService(db, cartRepo, catalogRepo, userRepo)
	orderSvc := NewOrderService(db, orderRepo, cartRepo, userRepo, cartSvc)
	paymentSvc := NewPaymentService(db, paymentRepo, orderRepo, orderSvc)

	return &fixture{
		db:         db,
		orderRepo:  orderRepo,
		cartSvc:    cartSvc,
		orderSvc:   orderSvc,
		paymentSvc: paymentSvc,
	}
}

func (f *fixture) seedUser(t *testing.T) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:   "Test User",
		Email:  fmt.Sprintf("user%d@example.com", testDBSeq.Add(1)),
		Role:   "customer",
		Active: true,
	}
	require.NoError(t, f.db.Create(u).Error)
	return u
}

func (f *fixture) seedRestaurant(t *testing.T, open bool) *entity.Restaurant {
	t.Helper()
	r := &entity.Restaurant{Name: "Test Restaurant", Open: open}
	require.NoError(t, f.db.Create(r).Error)
	return r
}

func (f *fixture) seedVariation(t *testing.T, restaurantID uint, price string, cookingMinutes int, available bool) *entity.MenuVariation {
	t.Helper()
	item := &entity.MenuItem{RestaurantID: restaurantID, Name: "Test Item"}
	require.NoError(t, f.db.Create(item).Error)

	v := &entity.MenuVariation{
		MenuItemID:     item.ID,
		Label:          "Regular",
		Price:          mustDecimal(t, price),
		CookingMinutes: cookingMinutes,
		Available:      available,
	}
	require.NoError(t, f.db.Create(v).Error)
	return v
}

func (f *fixture) seedOrder(t *testing.T, userID uint, status entity.OrderStatus, total string) *entity.Order {
	t.Helper()
	o := &entity.Order{
		UserID:     userID,
		Status:     status,
		Total:      mustDecimal(t, total),
		EtaMinutes: 20,
	}
	require.NoError(t, f.db.Create(o).Error)
	return o
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func requireCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	e, ok := apperr.As(err)
	require.True(t, ok, "expected business error, got %v", err)
	require.Equal(t, code, e.Code)
}
