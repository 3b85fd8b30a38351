package ratings

import (
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all rating-related routes. Reads are public,
// creating requires a login, moderation requires the administrator role.
func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/ratings")
	{
		group.GET("", controller.List)
		group.GET("/search/:key/:value", controller.Search)
		group.GET("/:id", controller.Get)

		authed := group.Group("")
		authed.Use(middleware.JWTAuthWithConfig(cfg))
		{
			authed.POST("", controller.Create)

			admin := authed.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.PUT("/:id", controller.Update)
				admin.DELETE("/:id", controller.Delete)
			}
		}
	}
}
