package handlers

import (
	"net/http"

	"swiftcab/models"
	"swiftcab/services/booking"
	"swiftcab/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking CRUD API.
type BookingHandler struct {
	Svc    booking.BookingService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// CreateBooking handles the booking form submission.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	bk, err := h.Svc.Create(c.Request.Context(), input, "form")
	if err != nil {
		utils.JSONError(c, http.StatusUnprocessableEntity, "failed to create booking", err.Error())
		return
	}
	c.JSON(http.StatusCreated, bk)
}

// GetBooking returns one booking by ID.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	bk, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, bk)
}

// ListBookings returns bookings filtered by status and/or phone.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	filter := models.BookingFilter{
		Status:        c.Query("status"),
		CustomerPhone: c.Query("phone"),
	}
	bookings, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// CancelBooking marks a booking cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.Svc.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": models.BookingStatusCancelled})
}

// DeleteBooking removes a booking record. Admin only.
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}
