package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MavMaver/food-delivery/entity"
)

func TestCreateFromCart_UserNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.orderSvc.CreateFromCart(9999)
	requireCode(t, err, "USER_NOT_FOUND")
}

func TestCreateFromCart_NoActiveCart(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)

	_, err := f.orderSvc.CreateFromCart(u.ID)
	requireCode(t, err, "ACTIVE_CART_NOT_FOUND")
}

func TestCreateFromCart_EmptyCart(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	_, err := f.cartSvc.GetOrCreateActiveCart(u.ID)
	require.NoError(t, err)

	_, err = f.orderSvc.CreateFromCart(u.ID)
	requireCode(t, err, "EMPTY_CART")
}

// The concrete scenario from the product rules: 200.00 alone misses the
// minimum, 200.00 + 150.00 checks out with total 350.00 and ETA 20.
func TestCreateFromCart_MinimumAndSuccess(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	r := f.seedRestaurant(t, true)
	v1 := f.seedVariation(t, r.ID, "200.00", 8, true)
	v2 := f.seedVariation(t, r.ID, "150.00", 12, true)

	_, err := f.cartSvc.AddItem(u.ID, v1.ID, 1)
	require.NoError(t, err)

	_, err = f.orderSvc.CreateFromCart(u.ID)
	requireCode(t, err, "MIN_TOTAL_NOT_REACHED")

	_, err = f.cartSvc.AddItem(u.ID, v2.ID, 1)
	require.NoError(t, err)

	order, err := f.orderSvc.CreateFromCart(u.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderNew, order.Status)
	assert.True(t, order.Total.Equal(mustDecimal(t, "350.00")), "got %s", order.Total)
	assert.Equal(t, 20, order.EtaMinutes)
	require.Len(t, order.Lines, 2)
	for _, l := range order.Lines {
		assert.Equal(t, "Test Item", l.ItemName)
		assert.Equal(t, r.ID, l.RestaurantID)
	}

	// the source cart is gone; the next interaction starts a fresh one
	_, err = f.cartSvc.FindActiveCart(u.ID)
	require.Error(t, err)
	fresh, err := f.cartSvc.GetOrCreateActiveCart(u.ID)
	require.NoError(t, err)
	assert.Empty(t, fresh.Lines)
}

func TestCreateFromCart_UnavailableVariationLeavesCartUntouched(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	r := f.seedRestaurant(t, true)
	v1 := f.seedVariation(t, r.ID, "200.00", 8, true)
	v2 := f.seedVariation(t, r.ID, "150.00", 12, true)

	_, err := f.cartSvc.AddItem(u.ID, v1.ID, 1)
	require.NoError(t, err)
	_, err = f.cartSvc.AddItem(u.ID, v2.ID, 1)
	require.NoError(t, err)

	// catalog changed between add-to-cart and checkout
	require.NoError(t, f.db.Model(&entity.MenuVariation{}).
		Where("id = ?", v2.ID).Update("available", false).Error)

	_, err = f.orderSvc.CreateFromCart(u.ID)
	requireCode(t, err, "VARIATION_UNAVAILABLE")

	// no order was created and the cart survived intact
	var orders int64
	require.NoError(t, f.db.Model(&entity.Order{}).Count(&orders).Error)
	assert.EqualValues(t, 0, orders)

	cart, err := f.cartSvc.FindActiveCart(u.ID)
	require.NoError(t, err)
	assert.True(t, cart.Active)
	assert.Len(t, cart.Lines, 2)
}

func TestChangeStatus_FullForwardChain(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	o := f.seedOrder(t, u.ID, entity.OrderNew, "350.00")

	chain := []entity.OrderStatus{
		entity.OrderConfirmed, entity.OrderReady, entity.OrderAssigned,
		entity.OrderDelivering, entity.OrderDelivered,
	}
	for _, next := range chain {
		got, err := f.orderSvc.ChangeStatus(o.ID, next)
		require.NoError(t, err, "to %s", next)
		assert.Equal(t, next, got.Status)
	}
}

func TestChangeStatus_SkipAheadFails(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)

	cases := []struct {
		from, to entity.OrderStatus
	}{
		{entity.OrderNew, entity.OrderReady},
		{entity.OrderNew, entity.OrderAssigned},
		{entity.OrderNew, entity.OrderDelivering},
		{entity.OrderNew, entity.OrderDelivered},
		{entity.OrderConfirmed, entity.OrderAssigned},
		{entity.OrderConfirmed, entity.OrderDelivered},
		{entity.OrderReady, entity.OrderDelivering},
		{entity.OrderAssigned, entity.OrderDelivered},
	}
	for _, tc := range cases {
		o := f.seedOrder(t, u.ID, tc.from, "350.00")
		_, err := f.orderSvc.ChangeStatus(o.ID, tc.to)
		requireCode(t, err, "BAD_TRANSITION")
	}
}

func TestChangeStatus_BackwardsFails(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)

	cases := []struct {
		from, to entity.OrderStatus
	}{
		{entity.OrderConfirmed, entity.OrderNew},
		{entity.OrderDelivering, entity.OrderNew},
		{entity.OrderDelivering, entity.OrderReady},
		{entity.OrderDelivered, entity.OrderDelivering},
	}
	for _, tc := range cases {
		o := f.seedOrder(t, u.ID, tc.from, "350.00")
		_, err := f.orderSvc.ChangeStatus(o.ID, tc.to)
		requireCode(t, err, "BAD_TRANSITION")
	}
}

func TestChangeStatus_SameStatusIsNoOp(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	o := f.seedOrder(t, u.ID, entity.OrderConfirmed, "350.00")

	got, err := f.orderSvc.ChangeStatus(o.ID, entity.OrderConfirmed)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
	assert.Equal(t, o.Version, got.Version) // no write happened
}

func TestChangeStatus_Cancellation(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)

	// cancellable from every non-terminal state
	for _, from := range []entity.OrderStatus{
		entity.OrderNew, entity.OrderConfirmed, entity.OrderReady,
		entity.OrderAssigned, entity.OrderDelivering,
	} {
		o := f.seedOrder(t, u.ID, from, "350.00")
		got, err := f.orderSvc.Cancel(o.ID)
		require.NoError(t, err, "from %s", from)
		assert.Equal(t, entity.OrderCancelled, got.Status)
	}

	o := f.seedOrder(t, u.ID, entity.OrderDelivered, "350.00")
	_, err := f.orderSvc.Cancel(o.ID)
	requireCode(t, err, "CANNOT_CANCEL_DELIVERED")
}

func TestChangeStatus_OrderNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.orderSvc.ChangeStatus(9999, entity.OrderConfirmed)
	requireCode(t, err, "ORDER_NOT_FOUND")
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	o := f.seedOrder(t, u.ID, entity.OrderNew, "350.00")

	_, err := f.orderSvc.ChangeStatus(o.ID, entity.OrderStatus("SHIPPED"))
	requireCode(t, err, "BAD_STATUS")
}

func TestUpdateStatusCAS_StaleVersionLoses(t *testing.T) {
	f := newFixture(t)
	u := f.seedUser(t)
	o := f.seedOrder(t, u.ID, entity.OrderNew, "350.00")

	ok, err := f.orderRepo.UpdateStatusCAS(f.db, o.ID, o.Version, entity.OrderConfirmed)
	require.NoError(t, err)
	require.True(t, ok)

	// a second writer holding the old version must be rejected
	ok, err = f.orderRepo.UpdateStatusCAS(f.db, o.ID, o.Version, entity.OrderCancelled)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := f.orderSvc.Get(o.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderConfirmed, got.Status)
}

func TestList_FiltersByUserAndStatus(t *testing.T) {
	f := newFixture(t)
	u1 := f.seedUser(t)
	u2 := f.seedUser(t)
	f.seedOrder(t, u1.ID, entity.OrderNew, "350.00")
	f.seedOrder(t, u1.ID, entity.OrderCancelled, "400.00")
	f.seedOrder(t, u2.ID, entity.OrderNew, "500.00")

	orders, total, err := f.orderSvc.List(&u1.ID, nil, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, orders, 2)

	st := entity.OrderNew
	orders, total, err = f.orderSvc.List(nil, &st, 1, 20)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	for _, o := range orders {
		assert.Equal(t, entity.OrderNew, o.Status)
	}

	_, _, err = f.orderSvc.List(nil, func() *entity.OrderStatus {
		s := entity.OrderStatus("NOPE")
		return &s
	}(), 1, 20)
	requireCode(t, err, "BAD_STATUS")
}
