package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/jaypeewhat/rooms-sana/middlewares"
	"github.com/jaypeewhat/rooms-sana/models"
)

// resolveActor prefers a token-resolved actor over the body user field.
func resolveActor(c *gin.Context, bodyUser *models.Actor) *models.Actor {
	if v, ok := c.Get(middlewares.ActorKey); ok {
		if actor, ok := v.(*models.Actor); ok {
			return actor
		}
	}
	return bodyUser
}
