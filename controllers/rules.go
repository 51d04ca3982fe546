// controllers/rules.go
package controllers

import (
	"net/http"

	"slotwise-backend/models"
	"slotwise-backend/repository"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RuleController struct {
	Repo          *repository.RuleRepository
	Professionals *repository.ProfessionalRepository
}

// CreateRuleInput defines the expected JSON structure for a recurring
// availability rule
type CreateRuleInput struct {
	Weekday         int    `json:"weekday" binding:"required,min=1,max=7"`
	StartTime       string `json:"start_time" binding:"required"`
	EndTime         string `json:"end_time" binding:"required"`
	SlotSizeMinutes int    `json:"slot_size_minutes" binding:"min=0"`
}

// CreateExceptionInput defines the expected JSON structure for a
// date-specific override
type CreateExceptionInput struct {
	Date      string  `json:"date" binding:"required"`
	IsClosed  bool    `json:"is_closed"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

func (rc *RuleController) professionalFromPath(c *gin.Context) (uuid.UUID, bool) {
	professionalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid professional ID format")
		return uuid.Nil, false
	}
	if _, err := rc.Professionals.GetByID(c.Request.Context(), professionalID); err != nil {
		respondDomainError(c, err)
		return uuid.Nil, false
	}
	return professionalID, true
}

// GetRules lists a professional's recurring rules
func (rc *RuleController) GetRules(c *gin.Context) {
	professionalID, ok := rc.professionalFromPath(c)
	if !ok {
		return
	}

	rules, err := rc.Repo.ListRules(c.Request.Context(), professionalID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, rules)
}

// CreateRule adds a recurring open interval for a professional
func (rc *RuleController) CreateRule(c *gin.Context) {
	professionalID, ok := rc.professionalFromPath(c)
	if !ok {
		return
	}

	var input CreateRuleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Reject windows the engine would have to skip.
	start, err := utils.CombineUTC("2000-01-03", input.StartTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid start_time")
		return
	}
	end, err := utils.CombineUTC("2000-01-03", input.EndTime)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid end_time")
		return
	}
	if !end.After(start) {
		utils.RespondWithError(c, http.StatusBadRequest, "end_time must be after start_time")
		return
	}

	rule := models.AvailabilityRule{
		ProfessionalID:  professionalID,
		Weekday:         input.Weekday,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		SlotSizeMinutes: input.SlotSizeMinutes,
	}

	if err := rc.Repo.CreateRule(c.Request.Context(), &rule); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetExceptions lists a professional's date-specific overrides
func (rc *RuleController) GetExceptions(c *gin.Context) {
	professionalID, ok := rc.professionalFromPath(c)
	if !ok {
		return
	}

	exceptions, err := rc.Repo.ListExceptions(c.Request.Context(), professionalID)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, exceptions)
}

// CreateException adds a date-specific override (closure)
func (rc *RuleController) CreateException(c *gin.Context) {
	professionalID, ok := rc.professionalFromPath(c)
	if !ok {
		return
	}

	var input CreateExceptionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	if !utils.ValidateDateOnly(input.Date) {
		utils.RespondWithError(c, http.StatusBadRequest, "date must be YYYY-MM-DD")
		return
	}

	exception := models.AvailabilityException{
		ProfessionalID: professionalID,
		Date:           input.Date,
		IsClosed:       input.IsClosed,
		StartTime:      input.StartTime,
		EndTime:        input.EndTime,
	}

	if err := rc.Repo.CreateException(c.Request.Context(), &exception); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exception)
}
