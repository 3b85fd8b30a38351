package organizations

import (
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all organization-related routes. The directory
// is readable by any authenticated user and managed by administrators.
func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/organizations")
	group.Use(middleware.JWTAuthWithConfig(cfg))
	{
		group.GET("", controller.List)
		group.GET("/search/:key/:value", controller.Search)
		group.GET("/:id", controller.Get)

		admin := group.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("", controller.Create)
			admin.PUT("/:id", controller.Update)
			admin.DELETE("/:id", controller.Delete)
		}
	}
}
