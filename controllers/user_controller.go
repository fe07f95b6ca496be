package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/entity"
	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
)

type UserController struct{ Svc *services.UserService }

func NewUserController(s *services.UserService) *UserController { return &UserController{Svc: s} }

type createUserReq struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role"`
}

// POST /users
func (h *UserController) Create(c *gin.Context) {
	var req createUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	role := req.Role
	if role == "" {
		role = "customer"
	}
	u, err := h.Svc.Create(&entity.User{Name: req.Name, Email: req.Email, Role: role, Active: true})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, u)
}

// GET /users/:id
func (h *UserController) Detail(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}
	u, err := h.Svc.Get(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, u)
}

// GET /users?role=&page=&limit=
func (h *UserController) List(c *gin.Context) {
	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 20)

	users, total, err := h.Svc.List(c.Query("role"), page, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"items": users, "total": total, "page": page, "limit": limit})
}

// PATCH /users/:id
func (h *UserController) Update(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}
	var req services.UpdateUserIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	u, err := h.Svc.Update(id, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, u)
}

// DELETE /users/:id — deactivation, not removal.
func (h *UserController) Deactivate(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}
	if err := h.Svc.Deactivate(id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"ok": true})
}

// GET /users/:id/snapshot?at=RFC3339
func (h *UserController) SnapshotAt(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		resp.BadRequest(c, "invalid user id")
		return
	}
	at := time.Now()
	if v := c.Query("at"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			resp.BadRequest(c, "at must be RFC3339")
			return
		}
		at = parsed
	}

	snap, err := h.Svc.SnapshotAt(id, at)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, snap)
}
