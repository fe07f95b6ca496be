package entity

// OrderStatus is stored as its string value for readability.
type OrderStatus string

const (
	OrderNew        OrderStatus = "NEW"
	OrderConfirmed  OrderStatus = "CONFIRMED"
	OrderReady      OrderStatus = "READY"
	OrderAssigned   OrderStatus = "ASSIGNED"
	OrderDelivering OrderStatus = "DELIVERING"
	OrderDelivered  OrderStatus = "DELIVERED"
	OrderCancelled  OrderStatus = "CANCELLED"
)

// orderStatusPrev is the single source of truth for forward transitions:
// each status is reachable only from the status it maps to. NEW is absent
// because nothing may transition back to it, CANCELLED because cancellation
// has its own rule (allowed from any state except DELIVERED).
var orderStatusPrev = map[OrderStatus]OrderStatus{
	OrderConfirmed:  OrderNew,
	OrderReady:      OrderConfirmed,
	OrderAssigned:   OrderReady,
	OrderDelivering: OrderAssigned,
	OrderDelivered:  OrderDelivering,
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderNew, OrderConfirmed, OrderReady, OrderAssigned,
		OrderDelivering, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// CanTransitionTo reports whether the forward step s→to is legal.
// Cancellation and same→same no-ops are decided by the caller.
func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	prev, ok := orderStatusPrev[to]
	return ok && s == prev
}
