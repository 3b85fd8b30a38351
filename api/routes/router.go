// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"cinetick/internal/auth"
	"cinetick/internal/movies"
	"cinetick/internal/notifications"
	"cinetick/internal/organizations"
	"cinetick/internal/persons"
	"cinetick/internal/projections"
	"cinetick/internal/ratings"
	"cinetick/internal/shared/config"
	"cinetick/internal/shared/database"
	"cinetick/internal/tickets"
	"cinetick/pkg/cache"
	"cinetick/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher
	log       *logger.Logger
	startedAt time.Time
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher, log *logger.Logger) *Router {
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
		log:       log,
		startedAt: time.Now(),
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupMovieRoutes(api)
		r.setupProjectionRoutes(api)
		r.setupRatingRoutes(api)
		r.setupTicketRoutes(api)
		r.setupOrganizationRoutes(api)
		r.setupPersonRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "cinetick-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "cinetick-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"uptime":      time.Since(r.startedAt).String(),
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.Stores().Users())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupMovieRoutes configures the movie catalog routes
func (r *Router) setupMovieRoutes(rg *gin.RouterGroup) {
	var cacheSvc cache.Service
	if redisClient := r.db.GetRedis(); redisClient != nil {
		cacheSvc = cache.NewService(redisClient)
	}

	movieService := movies.NewService(r.db.Stores(), cacheSvc)
	movieController := movies.NewController(movieService)

	movies.SetupRoutes(rg, movieController, r.config)
}

// setupProjectionRoutes configures projection scheduling routes
func (r *Router) setupProjectionRoutes(rg *gin.RouterGroup) {
	projectionService := projections.NewService(r.db.Stores())
	projectionController := projections.NewController(projectionService)

	projections.SetupRoutes(rg, projectionController, r.config)
}

// setupRatingRoutes configures movie rating routes
func (r *Router) setupRatingRoutes(rg *gin.RouterGroup) {
	ratingService := ratings.NewService(r.db.Stores())
	ratingController := ratings.NewController(ratingService)

	ratings.SetupRoutes(rg, ratingController, r.config)
}

// setupTicketRoutes configures reservation and ticket management routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	ticketService := tickets.NewService(r.db.Stores(), r.publisher, r.log)
	ticketController := tickets.NewController(ticketService)

	tickets.SetupRoutes(rg, ticketController, r.config)
}

// setupOrganizationRoutes configures organization directory routes
func (r *Router) setupOrganizationRoutes(rg *gin.RouterGroup) {
	orgService := organizations.NewService(r.db.Stores())
	orgController := organizations.NewController(orgService)

	organizations.SetupRoutes(rg, orgController, r.config)
}

// setupPersonRoutes configures person directory routes
func (r *Router) setupPersonRoutes(rg *gin.RouterGroup) {
	personService := persons.NewService(r.db.Stores())
	personController := persons.NewController(personService)

	persons.SetupRoutes(rg, personController, r.config)
}
