package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func uintQuery(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return fallback
	}
	return v
}
