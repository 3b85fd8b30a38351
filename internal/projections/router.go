package projections

import (
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all projection-related routes. Reads are public;
// writes require the administrator role.
func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/projections")
	{
		group.GET("", controller.List)
		group.GET("/search/:key/:value", controller.Search)
		group.GET("/:id", controller.Get)

		admin := group.Group("")
		admin.Use(middleware.JWTAuthWithConfig(cfg), middleware.RequireAdmin())
		{
			admin.POST("", controller.Create)
			admin.PUT("/:id", controller.Update)
			admin.DELETE("/:id", controller.Delete)
		}
	}
}
