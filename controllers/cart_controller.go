package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// cartView is the snapshot every cart endpoint responds with.
type cartView struct {
	ID           uint              `json:"id,omitempty"`
	UserID       uint              `json:"userId"`
	RestaurantID *uint             `json:"restaurantId"`
	Lines        []entity.CartLine `json:"lines"`
	Subtotal     decimal.Decimal   `json:"subtotal"`
	EtaMinutes   int               `json:"etaMinutes"`
}

func (h *CartController) view(cart *entity.Cart) cartView {
	return cartView{
		ID:           cart.ID,
		UserID:       cart.UserID,
		RestaurantID: cart.RestaurantID,
		Lines:        cart.Lines,
		Subtotal:     h.Svc.Subtotal(cart),
		EtaMinutes:   h.Svc.EtaMinutes(cart),
	}
}

func emptyCartView(userID uint) cartView {
	return cartView{
		UserID:   userID,
		Lines:    []entity.CartLine{},
		Subtotal: decimal.Zero,
	}
}

// GET /cart?userId=
func (h *CartController) Get(c *gin.Context) {
	userID, ok := uintQuery(c, "userId")
	if !ok {
		resp.BadRequest(c, "userId is required")
		return
	}

	cart, err := h.Svc.FindActiveCart(userID)
	if err != nil {
		// no active cart yet: respond with a synthetic empty one
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.OK(c, emptyCartView(userID))
			return
		}
		resp.Error(c, err)
		return
	}
	resp.OK(c, h.view(cart))
}

type addItemReq struct {
	UserID      uint `json:"userId" binding:"required"`
	VariationID uint `json:"variationId" binding:"required"`
	// not "required": quantity 0 must reach the service and fail with
	// BAD_QUANTITY like any other non-positive value
	Quantity int `json:"quantity"`
}

// POST /cart/items
func (h *CartController) AddItem(c *gin.Context) {
	var req addItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.AddItem(req.UserID, req.VariationID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, h.view(cart))
}

type updateLineReq struct {
	Quantity int `json:"quantity"`
}

// PATCH /cart/items/:id
func (h *CartController) UpdateLine(c *gin.Context) {
	lineID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid line id")
		return
	}
	var req updateLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	cart, err := h.Svc.UpdateLineQuantity(lineID, req.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, h.view(cart))
}

// DELETE /cart/items/:id
func (h *CartController) RemoveLine(c *gin.Context) {
	lineID, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid line id")
		return
	}

	cart, err := h.Svc.RemoveLine(lineID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, h.view(cart))
}

// DELETE /cart?userId=
func (h *CartController) Clear(c *gin.Context) {
	userID, ok := uintQuery(c, "userId")
	if !ok {
		resp.BadRequest(c, "userId is required")
		return
	}
	if err := h.Svc.Clear(userID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
