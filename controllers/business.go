// controllers/business.go
package controllers

import (
	"net/http"

	"slotwise-backend/models"
	"slotwise-backend/repository"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
)

type BusinessController struct {
	Repo *repository.BusinessRepository
}

// CreateBusinessInput defines the expected JSON structure for creating a business
type CreateBusinessInput struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	WhatsappNumber string `json:"whatsapp_number"`
	Address        string `json:"address"`
	City           string `json:"city"`
	State          string `json:"state"`
}

// GetBusinesses retrieves all businesses, newest first
func (bc *BusinessController) GetBusinesses(c *gin.Context) {
	businesses, err := bc.Repo.List(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, businesses)
}

// CreateBusiness creates a new business
func (bc *BusinessController) CreateBusiness(c *gin.Context) {
	var input CreateBusinessInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.WhatsappNumber != "" && !utils.ValidatePhone(input.WhatsappNumber) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid WhatsApp number")
		return
	}

	business := models.Business{
		Name:           input.Name,
		Description:    input.Description,
		WhatsappNumber: input.WhatsappNumber,
		Address:        input.Address,
		City:           input.City,
		State:          input.State,
	}

	if err := bc.Repo.Create(c.Request.Context(), &business); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, business)
}
