// controllers/booking.go
package controllers

import (
	"errors"
	"net/http"
	"time"

	"slotwise-backend/repository"
	"slotwise-backend/services"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingController struct {
	Service *services.BookingService
	Repo    *repository.BookingRepository
}

// CreateBookingInput defines the expected JSON structure for creating a booking
type CreateBookingInput struct {
	BusinessID     uuid.UUID `json:"business_id" binding:"required"`
	ProfessionalID uuid.UUID `json:"professional_id" binding:"required"`
	ServiceID      uuid.UUID `json:"service_id" binding:"required"`
	CustomerName   string    `json:"customer_name"`
	CustomerPhone  string    `json:"customer_phone" binding:"required"`
	StartAt        time.Time `json:"start_at" binding:"required"`
}

// GetBookings lists a professional's bookings for one day (calendar view)
func (bc *BookingController) GetBookings(c *gin.Context) {
	professionalID, ok := parseUUIDQuery(c, "professional_id")
	if !ok {
		return
	}
	date := c.Query("date")
	if !utils.ValidateDateOnly(date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	bookings, err := bc.Repo.ListForDay(c.Request.Context(), professionalID, date)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking creates a confirmed booking, re-validating the interval
// against concurrent writers
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if !utils.ValidatePhone(input.CustomerPhone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer phone")
		return
	}

	booking, err := bc.Service.Create(c.Request.Context(), services.CreateBookingInput{
		BusinessID:     input.BusinessID,
		ProfessionalID: input.ProfessionalID,
		ServiceID:      input.ServiceID,
		CustomerName:   input.CustomerName,
		CustomerPhone:  input.CustomerPhone,
		StartAt:        input.StartAt,
	})
	if errors.Is(err, services.ErrSlotTaken) {
		utils.RespondWithError(c, http.StatusConflict, "Slot already booked")
		return
	}
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking cancels a confirmed booking
func (bc *BookingController) CancelBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid booking ID format")
		return
	}

	if err := bc.Service.Cancel(c.Request.Context(), bookingID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
}
