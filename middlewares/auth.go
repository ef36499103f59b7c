package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jaypeewhat/rooms-sana/models"
	"github.com/jaypeewhat/rooms-sana/utils"
)

// ActorKey is the context key under which a token-resolved actor is stored.
const ActorKey = "actor"

// ActorFromToken resolves the request actor from a bearer token when one is
// present and valid. Requests without a usable token pass through untouched
// and fall back to the body user field.
func ActorFromToken(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.Request.Header.Get("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			c.Next()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err == nil {
			c.Set(ActorKey, &models.Actor{Email: claims.Email, Role: claims.Role})
		}
		c.Next()
	}
}
