package movies

import (
	"net/http"

	"cinetick/internal/shared/apperr"
	"cinetick/internal/shared/utils/query"
	"cinetick/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

func respondError(ctx *gin.Context, err error, message string) {
	code := apperr.HTTPStatus(err)
	if code == http.StatusInternalServerError {
		response.RespondJSON(ctx, "error", code, message, nil, nil)
		return
	}
	response.RespondJSON(ctx, "error", code, message, nil, err.Error())
}

// Create handles POST /api/v1/movies (admin)
func (c *Controller) Create(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	movie, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "Failed to create movie")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Movie created successfully", movie, nil)
}

// Get handles GET /api/v1/movies/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, nil)
		return
	}

	movie, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Failed to get movie")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie retrieved successfully", movie, nil)
}

// List handles GET /api/v1/movies
func (c *Controller) List(ctx *gin.Context) {
	p := query.ParsePaging(ctx)

	items, total, err := c.service.List(ctx.Request.Context(), p.Index, p.Count, p.Order, p.Direction)
	if err != nil {
		respondError(ctx, err, "Failed to list movies")
		return
	}

	query.SetTotalCount(ctx, total)
	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", items, nil)
}

// Search handles GET /api/v1/movies/search/:key/:value
func (c *Controller) Search(ctx *gin.Context) {
	p := query.ParsePaging(ctx)

	items, total, err := c.service.Search(ctx.Request.Context(), ctx.Param("key"), ctx.Param("value"), p.Index, p.Count, p.Order, p.Direction)
	if err != nil {
		respondError(ctx, err, "Failed to search movies")
		return
	}

	query.SetTotalCount(ctx, total)
	response.RespondJSON(ctx, "success", http.StatusOK, "Movies retrieved successfully", items, nil)
}

// Update handles PUT /api/v1/movies/:id (admin)
func (c *Controller) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, nil)
		return
	}

	var req UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	movie, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err, "Failed to update movie")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie updated successfully", movie, nil)
}

// Delete handles DELETE /api/v1/movies/:id (admin)
func (c *Controller) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid movie ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Failed to delete movie")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Movie deleted successfully", nil, nil)
}
