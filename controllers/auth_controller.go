package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/MavMaver/food-delivery/pkg/resp"
	"github.com/MavMaver/food-delivery/services"
	"github.com/MavMaver/food-delivery/utils"
)

type AuthController struct {
	Svc     *services.AuthService
	UserSvc *services.UserService
}

func NewAuthController(s *services.AuthService, userSvc *services.UserService) *AuthController {
	return &AuthController{Svc: s, UserSvc: userSvc}
}

// POST /auth/register
func (h *AuthController) Register(c *gin.Context) {
	var req services.RegisterIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Register(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /auth/login
func (h *AuthController) Login(c *gin.Context) {
	var req services.LoginIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := h.Svc.Login(&req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /auth/me
func (h *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if uid == 0 {
		resp.Unauthorized(c, "unauthorized")
		return
	}

	u, err := h.UserSvc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, u)
}
