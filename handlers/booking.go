package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/savinash9/happy-hotels/models"
	"github.com/savinash9/happy-hotels/services/booking"
	"github.com/savinash9/happy-hotels/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the record-store REST surface.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler returns a new BookingHandler.
func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", map[string]any{"reason": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(c.Request.Context(), payload)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": created})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	found, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": found})
}

// UpdateBooking handles PATCH /api/bookings/:id.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	id := c.Param("id")
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", map[string]any{"reason": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBooking(c.Request.Context(), id, patch)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": updated})
}

// ListBookings handles GET /api/bookings with filtering and pagination.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	year, _ := strconv.Atoi(c.Query("year"))

	filter := models.BookingFilter{
		Hotel:   c.Query("hotel"),
		Year:    year,
		Month:   c.Query("month"),
		Country: c.Query("country"),
		Status:  c.Query("status"),
	}

	bookings, pagination, err := h.Service.ListBookings(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bookings, "pagination": pagination})
}

// DeleteBooking handles DELETE /api/bookings/:id (soft delete).
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	deleted, err := h.Service.DeleteBooking(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": deleted})
}

// respondError maps service errors onto the error envelope.
func (h *BookingHandler) respondError(c *gin.Context, err error) {
	var notFound *booking.NotFoundError
	if errors.As(err, &notFound) {
		utils.JSONError(c, http.StatusNotFound, "NOT_FOUND", notFound.Error(), map[string]any{"id": notFound.ID})
		return
	}

	var invalidMonth *booking.InvalidMonthError
	if errors.As(err, &invalidMonth) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "INVALID_MONTH", invalidMonth.Error(), map[string]any{"value": invalidMonth.Value})
		return
	}

	var validation *booking.ValidationError
	if errors.As(err, &validation) {
		details := make(map[string]any, len(validation.Details))
		for field, problem := range validation.Details {
			details[field] = problem
		}
		utils.JSONError(c, http.StatusUnprocessableEntity, "VALIDATION", "booking payload failed validation", details)
		return
	}

	h.Logger.Error("booking request failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "INTERNAL", "something went wrong", nil)
}
