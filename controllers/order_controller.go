package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

type createOrderReq struct {
	UserID uint `json:"userId" binding:"required"`
}

// POST /orders — checkout of the user's active cart.
func (h *OrderController) Create(c *gin.Context) {
	var req createOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.CreateFromCart(req.UserID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.Get(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// GET /orders?userId=&status=&page=&limit=
func (h *OrderController) List(c *gin.Context) {
	var userID *uint
	if id, ok := uintQuery(c, "userId"); ok {
		userID = &id
	}
	var status *entity.OrderStatus
	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		status = &st
	}

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	orders, total, err := h.Svc.List(userID, status, page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders, "total": total, "page": page, "limit": limit})
}

type statusUpdateReq struct {
	Status entity.OrderStatus `json:"status" binding:"required"`
}

// PATCH /orders/:id/status
func (h *OrderController) ChangeStatus(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}
	var req statusUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Svc.ChangeStatus(orderID, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id — cancellation alias; orders are never removed.
func (h *OrderController) Cancel(c *gin.Context) {
	orderID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid order id")
		return
	}

	order, err := h.Svc.Cancel(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}
