// controllers/professional.go
package controllers

import (
	"net/http"

	"slotwise-backend/models"
	"slotwise-backend/repository"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProfessionalController struct {
	Repo *repository.ProfessionalRepository
}

// CreateProfessionalInput defines the expected JSON structure for creating a professional
type CreateProfessionalInput struct {
	BusinessID uuid.UUID `json:"business_id" binding:"required"`
	Name       string    `json:"name" binding:"required"`
	Role       string    `json:"role"`
	Bio        string    `json:"bio"`
}

// AssignServiceInput links a professional to a service it performs
type AssignServiceInput struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
}

// GetProfessionals retrieves active professionals, filtered by business
// and/or the service they perform
func (pc *ProfessionalController) GetProfessionals(c *gin.Context) {
	businessID, ok := optionalUUIDQuery(c, "business_id")
	if !ok {
		return
	}
	serviceID, ok := optionalUUIDQuery(c, "service_id")
	if !ok {
		return
	}

	professionals, err := pc.Repo.List(c.Request.Context(), businessID, serviceID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, professionals)
}

// CreateProfessional creates a new professional
func (pc *ProfessionalController) CreateProfessional(c *gin.Context) {
	var input CreateProfessionalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	professional := models.Professional{
		BusinessID: input.BusinessID,
		Name:       input.Name,
		Role:       input.Role,
		Bio:        input.Bio,
		Active:     true,
	}

	if err := pc.Repo.Create(c.Request.Context(), &professional); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, professional)
}

// AssignService links a professional to a service
func (pc *ProfessionalController) AssignService(c *gin.Context) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return
	}

	var input AssignServiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if _, err := pc.Repo.GetByID(c.Request.Context(), professionalID); err != nil {
		respondDomainError(c, err)
		return
	}

	if err := pc.Repo.AssignService(c.Request.Context(), professionalID, input.ServiceID); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service assigned"})
}
