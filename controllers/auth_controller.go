package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaypeewhat/rooms-sana/dto"
	"github.com/jaypeewhat/rooms-sana/models"
	"github.com/jaypeewhat/rooms-sana/utils"
)

type AuthController struct {
	tokens *utils.TokenManager
}

func NewAuthController(tokens *utils.TokenManager) *AuthController {
	return &AuthController{tokens: tokens}
}

// IssueToken hands out a bearer token for the claimed identity. The role is
// not verified against anything; this only moves the claim from the request
// body into a signed header.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var req dto.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Missing required fields: email, role")
		return
	}

	token, err := ac.tokens.Generate(models.Actor{Email: req.Email, Role: req.Role})
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
}
