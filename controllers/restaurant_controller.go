package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
)

type RestaurantController struct{ Svc *services.CatalogService }

func NewRestaurantController(s *services.CatalogService) *RestaurantController {
	return &RestaurantController{Svc: s}
}

// GET /restaurants
func (h *RestaurantController) List(c *gin.Context) {
	out, err := h.Svc.ListRestaurants()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /restaurants/:id
func (h *RestaurantController) Detail(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	rest, err := h.Svc.GetRestaurant(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rest)
}

// POST /restaurants
func (h *RestaurantController) Create(c *gin.Context) {
	var req services.CreateRestaurantIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	rest, err := h.Svc.CreateRestaurant(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rest)
}

type openReq struct {
	Open *bool `json:"open" binding:"required"`
}

// PATCH /restaurants/:id/open
func (h *RestaurantController) SetOpen(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req openReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetRestaurantOpen(id, *req.Open); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// POST /restaurants/:id/menu
func (h *RestaurantController) CreateMenuItem(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid restaurant id")
		return
	}
	var req services.CreateMenuItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item, err := h.Svc.CreateMenuItem(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, item)
}

// POST /menu/:id/variations
func (h *RestaurantController) CreateVariation(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	var req services.CreateVariationIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	v, err := h.Svc.CreateVariation(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, v)
}

type availabilityReq struct {
	Available *bool `json:"available" binding:"required"`
}

// PATCH /variations/:id/availability
func (h *RestaurantController) SetAvailability(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid variation id")
		return
	}
	var req availabilityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.SetVariationAvailability(id, *req.Available); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}
