// File: handlers/booking.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/models"
	"glowbook/services/booking"
	"glowbook/utils"
)

// BookingHandler serves booking submission and lookup.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// BookingDTO is the wire form of a confirmed booking.
type BookingDTO struct {
	ID            string `json:"id"`
	ServiceID     string `json:"serviceId"`
	ShopID        string `json:"shopId,omitempty"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail,omitempty"`
	Status        string `json:"status"`
}

func toBookingDTO(b *models.Booking) BookingDTO {
	return BookingDTO{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		ShopID:        b.ShopID,
		Date:          b.Date,
		StartTime:     utils.FormatClock(b.Start),
		EndTime:       utils.FormatClock(b.End),
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		Status:        b.Status,
	}
}

// ConfirmBookingHandler handles POST /api/bookings.
func (h *BookingHandler) ConfirmBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	confirmed, err := h.Service.ConfirmBooking(c.Request.Context(), req)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			status := http.StatusUnprocessableEntity
			switch bookingErr {
			case booking.ErrSlotTaken:
				status = http.StatusConflict
			case booking.ErrUnknownService:
				status = http.StatusNotFound
			}
			utils.JSONError(c, status, bookingErr.Message, bookingErr.Code)
			return
		}
		logger.Error("Failed to confirm booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to confirm booking", "")
		return
	}
	c.JSON(http.StatusCreated, toBookingDTO(confirmed))
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetBooking(c.Request.Context(), id)
	if err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			utils.JSONError(c, http.StatusNotFound, bookingErr.Message, bookingErr.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load booking", "")
		return
	}
	c.JSON(http.StatusOK, toBookingDTO(b))
}

// CancelBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.CancelBooking(c.Request.Context(), id); err != nil {
		var bookingErr *booking.BookingError
		if errors.As(err, &bookingErr) {
			utils.JSONError(c, http.StatusNotFound, bookingErr.Message, bookingErr.Code)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to cancel booking", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled", "id": id})
}
