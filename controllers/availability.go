// controllers/availability.go
package controllers

import (
	"net/http"
	"time"

	"slotwise-backend/services/availability"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	Engine *availability.Engine
}

// SlotResponse is the wire shape of one open slot
type SlotResponse struct {
	Start string `json:"start"` // RFC 3339 instant
}

// GetAvailability computes the open slots for one
// (business, service, professional, date) request. Responds with a JSON
// array, [] when nothing is bookable.
func (ac *AvailabilityController) GetAvailability(c *gin.Context) {
	businessID, ok := parseUUIDQuery(c, "business_id")
	if !ok {
		return
	}
	serviceID, ok := parseUUIDQuery(c, "service_id")
	if !ok {
		return
	}
	professionalID, ok := parseUUIDQuery(c, "professional_id")
	if !ok {
		return
	}

	date := c.Query("date")
	if !utils.ValidateDateOnly(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	slots, err := ac.Engine.Compute(c.Request.Context(), businessID, serviceID, professionalID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	response := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		response = append(response, SlotResponse{Start: slot.Start.Format(time.RFC3339)})
	}
	c.JSON(http.StatusOK, response)
}
