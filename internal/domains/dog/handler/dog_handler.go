package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"doghotel-backend/internal/domains/dog/model"
	"doghotel-backend/internal/domains/dog/service"
	"doghotel-backend/internal/shared/response"
)

// =====================================================
// DOG HANDLER
// =====================================================
type DogHandler struct {
	dogService service.DogService
}

// NewDogHandler creates a new dog handler
func NewDogHandler(dogService service.DogService) *DogHandler {
	return &DogHandler{
		dogService: dogService,
	}
}

// RegisterRoutes registers all dog catalog routes
func (h *DogHandler) RegisterRoutes(router *gin.RouterGroup) {
	dogRoutes := router.Group("/dogs")
	{
		dogRoutes.POST("", h.CreateDog) // POST /v1/dogs
		dogRoutes.GET("", h.ListDogs)   // GET  /v1/dogs?search=corgi
		dogRoutes.GET("/:id", h.GetDog) // GET  /v1/dogs/:id
	}
}

func (h *DogHandler) CreateDog(c *gin.Context) {
	var req model.CreateDogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	dog, err := h.dogService.CreateDog(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrDogNameTaken) {
			response.ErrorResponse(c, http.StatusConflict, model.ErrCodeDogNameTaken, err.Error())
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, dog)
}

func (h *DogHandler) GetDog(c *gin.Context) {
	dogID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid dog id")
		return
	}

	dog, err := h.dogService.GetDog(c.Request.Context(), dogID)
	if err != nil {
		if errors.Is(err, model.ErrDogNotFound) {
			response.NotFound(c, "Dog not found")
			return
		}
		response.InternalServerError(c, "Failed to get dog")
		return
	}

	response.Success(c, http.StatusOK, dog)
}

func (h *DogHandler) ListDogs(c *gin.Context) {
	var req model.ListDogsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.dogService.ListDogs(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to list dogs")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Data, &response.Meta{
		Total: result.Total,
	})
}
