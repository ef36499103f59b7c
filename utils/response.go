package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success writes the standard success envelope. A nil data leaves the body
// at a bare {"success":true}.
func Success(c *gin.Context, data interface{}) {
	if data == nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}
