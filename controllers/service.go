// controllers/service.go
package controllers

import (
	"net/http"

	"slotwise-backend/models"
	"slotwise-backend/repository"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ServiceController struct {
	Repo *repository.ServiceRepository
}

// CreateServiceInput defines the expected JSON structure for creating a service
type CreateServiceInput struct {
	BusinessID      uuid.UUID `json:"business_id" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Price           float64   `json:"price" binding:"min=0"`
	DurationMinutes int       `json:"duration_minutes" binding:"min=0"`
}

// GetServices retrieves services, optionally filtered by business
func (sc *ServiceController) GetServices(c *gin.Context) {
	businessID, ok := optionalUUIDQuery(c, "business_id")
	if !ok {
		return
	}

	services, err := sc.Repo.List(c.Request.Context(), businessID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService creates a new service for a business
func (sc *ServiceController) CreateService(c *gin.Context) {
	var input CreateServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service := models.Service{
		BusinessID:      input.BusinessID,
		Name:            input.Name,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Active:          true,
	}

	if err := sc.Repo.Create(c.Request.Context(), &service); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service)
}
