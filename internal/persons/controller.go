package persons

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

// Create handles POST /api/v1/persons (admin)
func (c *Controller) Create(ctx *gin.Context) {
	var req PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	person, err := c.service.Create(ctx.Request.Context(), &req)
	if err != nil {
		respondError(ctx, err, "Failed to create person")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Person created successfully", person, nil)
}

// Get handles GET /api/v1/persons/:id
func (c *Controller) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid person ID", nil, nil)
		return
	}

	person, err := c.service.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, "Failed to get person")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Person retrieved successfully", person, nil)
}

// List handles GET /api/v1/persons
func (c *Controller) List(ctx *gin.Context) {
	p := query.ParsePaging(ctx)

	items, total, err := c.service.List(ctx.Request.Context(), p.Index, p.Count, p.Order, p.Direction)
	if err != nil {
		respondError(ctx, err, "Failed to list persons")
		return
	}

	query.SetTotalCount(ctx, total)
	response.RespondJSON(ctx, "success", http.StatusOK, "Persons retrieved successfully", items, nil)
}

// Search handles GET /api/v1/persons/search/:key/:value
func (c *Controller) Search(ctx *gin.Context) {
	p := query.ParsePaging(ctx)

	items, total, err := c.service.Search(ctx.Request.Context(), ctx.Param("key"), ctx.Param("value"), p.Index, p.Count, p.Order, p.Direction)
	if err != nil {
		respondError(ctx, err, "Failed to search persons")
		return
	}

	query.SetTotalCount(ctx, total)
	response.RespondJSON(ctx, "success", http.StatusOK, "Persons retrieved successfully", items, nil)
}

// Update handles PUT /api/v1/persons/:id (admin)
func (c *Controller) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid person ID", nil, nil)
		return
	}

	var req PersonRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}
	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	person, err := c.service.Update(ctx.Request.Context(), id, &req)
	if err != nil {
		respondError(ctx, err, "Failed to update person")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Person updated successfully", person, nil)
}

// Delete handles DELETE /api/v1/persons/:id (admin)
func (c *Controller) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid person ID", nil, nil)
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, "Failed to delete person")
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Person deleted successfully", nil, nil)
}
