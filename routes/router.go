package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/jaypeewhat/rooms-sana/controllers"
	"github.com/jaypeewhat/rooms-sana/middlewares"
	"github.com/jaypeewhat/rooms-sana/services"
	"github.com/jaypeewhat/rooms-sana/utils"
)

// SetupRouter wires the full handler graph over the given store handle.
func SetupRouter(db *gorm.DB, log *zap.Logger, tokens *utils.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("panic in handler", zap.Any("error", recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Something went wrong!",
		})
	}))
	r.Use(cors.Default())
	r.Use(middlewares.ActorFromToken(tokens))

	system := controllers.NewSystemController()
	auth := controllers.NewAuthController(tokens)
	submissions := controllers.NewSubmissionController(services.NewSubmissionService(db, log))
	rooms := controllers.NewRoomController(services.NewRoomService(db, log))

	r.GET("/", system.Index)
	r.GET("/health", system.Health)

	api := r.Group("/api")
	{
		api.POST("/auth/token", auth.IssueToken)

		api.POST("/submissions", submissions.Create)
		api.GET("/submissions", submissions.List)

		api.GET("/rooms", rooms.List)
		api.POST("/rooms", rooms.Create)
		api.PUT("/rooms/:id", rooms.Update)
		api.DELETE("/rooms/:id", rooms.Delete)
		api.PATCH("/rooms/:id/status", rooms.UpdateStatus)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Endpoint not found"})
	})

	return r
}
