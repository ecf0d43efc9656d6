package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"doghotel-backend/internal/domains/booking/model"
	"doghotel-backend/internal/domains/booking/service"
	"doghotel-backend/internal/shared/response"
)

// =====================================================
// BOOKING HANDLER
// =====================================================
type BookingHandler struct {
	bookingService service.BookingService
	rankingService service.RankingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingService, rankingService service.RankingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		rankingService: rankingService,
	}
}

// RegisterRoutes registers all booking routes
func (h *BookingHandler) RegisterRoutes(router *gin.RouterGroup) {
	bookingRoutes := router.Group("/bookings")
	{
		bookingRoutes.POST("", h.CreateBooking)                   // POST  /v1/bookings
		bookingRoutes.GET("", h.ListBookings)                     // GET   /v1/bookings?search=&sortBy=&sortOrder=
		bookingRoutes.GET("/top-dogs", h.TopDogs)                 // GET   /v1/bookings/top-dogs?year=2026&month=2
		bookingRoutes.PATCH("/:id/status", h.UpdateBookingStatus) // PATCH /v1/bookings/:id/status
	}
}

// =====================================================
// CREATE BOOKING
// =====================================================

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.bookingService.CreateBooking(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrSequenceUnavailable):
			response.ServiceUnavailable(c, "Order number allocation is unavailable")
		case errors.Is(err, model.ErrMalformedTimeRange):
			response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeMalformedTimeRange, err.Error())
		case errors.Is(err, model.ErrDogNotFound):
			response.ErrorResponse(c, http.StatusUnprocessableEntity, model.ErrCodeDogNotFound, err.Error())
		default:
			var bookingErr *model.BookingError
			if errors.As(err, &bookingErr) {
				response.ErrorResponse(c, http.StatusBadRequest, bookingErr.Code, bookingErr.Error())
				return
			}
			response.InternalServerError(c, "Failed to create booking")
		}
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// =====================================================
// LIST BOOKINGS
// =====================================================

func (h *BookingHandler) ListBookings(c *gin.Context) {
	var req model.ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.bookingService.ListBookings(c.Request.Context(), req)
	if err != nil {
		response.InternalServerError(c, "Failed to list bookings")
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, result.Data, &response.Meta{
		Total: result.Total,
	})
}

// =====================================================
// UPDATE BOOKING STATUS
// =====================================================

func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid booking id")
		return
	}

	var req model.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.bookingService.UpdateBookingStatus(c.Request.Context(), bookingID, *req.OrderStatus)
	if err != nil {
		if errors.Is(err, model.ErrBookingNotFound) {
			response.NotFound(c, "Booking not found")
			return
		}
		response.InternalServerError(c, "Failed to update booking status")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// =====================================================
// TOP DOGS RANKING
// =====================================================

func (h *BookingHandler) TopDogs(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		response.BadRequest(c, "Invalid year")
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, "Invalid month")
		return
	}

	result, err := h.rankingService.TopDogs(c.Request.Context(), year, month)
	if err != nil {
		if errors.Is(err, model.ErrInvalidPeriod) {
			response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidPeriod, err.Error())
			return
		}
		response.InternalServerError(c, "Failed to compute ranking")
		return
	}

	response.Success(c, http.StatusOK, result)
}
