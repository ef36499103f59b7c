package dto

import (
	"github.com/jaypeewhat/rooms-sana/models"
)

type TokenRequest struct {
	Email string      `json:"email" binding:"required,email"`
	Role  models.Role `json:"role" binding:"required,oneof=admin student"`
}
