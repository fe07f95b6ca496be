package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
)

type PaymentController struct{ Svc *services.PaymentService }

func NewPaymentController(s *services.PaymentService) *PaymentController {
	return &PaymentController{Svc: s}
}

type createPaymentReq struct {
	OrderID    int64           `json:"orderId"`
	Amount     decimal.Decimal `json:"amount"`
	ExternalID *string         `json:"externalId"`
}

// POST /payments
func (h *PaymentController) Create(c *gin.Context) {
	var req createPaymentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.Create(req.OrderID, req.Amount, req.ExternalID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, p)
}

type paymentStatusReq struct {
	Status entity.PaymentStatus `json:"status" binding:"required"`
}

// PATCH /payments/:id/status — records the outcome reported by the payment
// provider and triggers the order side effects.
func (h *PaymentController) UpdateStatus(c *gin.Context) {
	paymentID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid payment id")
		return
	}
	var req paymentStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	p, err := h.Svc.UpdateStatus(paymentID, req.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, p)
}

// GET /payments?orderId=
func (h *PaymentController) List(c *gin.Context) {
	orderID, ok := uintQuery(c, "orderId")
	if !ok {
		resp.BadRequest(c, "orderId is required")
		return
	}

	payments, err := h.Svc.ListByOrder(orderID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payments)
}
