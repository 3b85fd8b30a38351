package tickets

import (
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/middleware"
	"cinetick/internal/users"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all ticket-related routes
func SetupRoutes(rg *gin.RouterGroup, controller *Controller, cfg *config.Config) {
	group := rg.Group("/tickets")
	group.Use(middleware.JWTAuthWithConfig(cfg))
	{
		// any authenticated user
		group.POST("/reserve", controller.Reserve)
		group.GET("/user/:id", controller.ListByUser)

		// administration
		admin := group.Group("")
		admin.Use(middleware.RequireRole(string(users.RoleAdministrator)))
		{
			admin.POST("", controller.Create)
			admin.GET("", controller.List)
			admin.GET("/search/:key/:value", controller.Search)
			admin.GET("/:id", controller.Get)
			admin.PUT("/:id", controller.Update)
			admin.DELETE("/:id", controller.Delete)
		}
	}
}
