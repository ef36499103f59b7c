package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SystemController struct{}

func NewSystemController() *SystemController {
	return &SystemController{}
}

func (sc *SystemController) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Hotel Room Management Backend API",
		"status":  "Running",
		"version": "1.0.0",
		"endpoints": gin.H{
			"health":      "/health",
			"submissions": "/api/submissions",
			"rooms":       "/api/rooms",
		},
	})
}

func (sc *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
