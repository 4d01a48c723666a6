// File: handlers/availability.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"glowbook/models"
	"glowbook/services/scheduling"
	"glowbook/utils"
)

// AvailabilityHandler serves the calendar overlay and per-date slot lists.
type AvailabilityHandler struct {
	Scheduler scheduling.SchedulingService
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(scheduler scheduling.SchedulingService) *AvailabilityHandler {
	return &AvailabilityHandler{Scheduler: scheduler}
}

// SlotDTO is the wire form of one candidate slot. Times cross the boundary
// as "HH:MM" strings only.
type SlotDTO struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"durationMinutes"`
}

func toSlotDTOs(slots []models.CandidateSlot) []SlotDTO {
	out := make([]SlotDTO, 0, len(slots))
	for _, s := range slots {
		out = append(out, SlotDTO{
			Start:           utils.FormatClock(s.Start),
			End:             utils.FormatClock(s.End),
			DurationMinutes: s.Duration,
		})
	}
	return out
}

// GetCalendarHandler handles GET /api/availability/:serviceID/calendar.
func (h *AvailabilityHandler) GetCalendarHandler(c *gin.Context) {
	logger := utils.GetLogger()
	serviceID := c.Param("serviceID")

	overlay, err := h.Scheduler.GetCalendar(c.Request.Context(), serviceID)
	if err != nil {
		logger.Error("Failed to build calendar overlay",
			zap.String("serviceID", serviceID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load calendar", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"serviceId": serviceID, "dates": overlay})
}

// GetDaySlotsHandler handles GET /api/availability/:serviceID/slots?date=YYYY-MM-DD.
func (h *AvailabilityHandler) GetDaySlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	serviceID := c.Param("serviceID")
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing date", "query parameter 'date' is required (YYYY-MM-DD)")
		return
	}
	if _, err := utils.ParseISODate(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid date", err.Error())
		return
	}

	slots, err := h.Scheduler.GetDaySlots(c.Request.Context(), serviceID, date)
	if err != nil {
		logger.Error("Failed to generate slots",
			zap.String("serviceID", serviceID), zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load slots", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"serviceId": serviceID,
		"date":      date,
		"slots":     toSlotDTOs(slots),
	})
}
