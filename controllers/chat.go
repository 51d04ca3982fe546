// controllers/chat.go
package controllers

import (
	"net/http"

	"slotwise-backend/services/chat"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ChatController struct {
	Service *chat.ChatService
}

// ChatInput is one inbound WhatsApp-simulator message
type ChatInput struct {
	BusinessID uuid.UUID `json:"business_id" binding:"required"`
	From       string    `json:"from" binding:"required"`
	Message    string    `json:"message" binding:"required"`
}

// HandleMessage runs one turn of the booking conversation
func (cc *ChatController) HandleMessage(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	reply, err := cc.Service.Handle(c.Request.Context(), chat.ChatRequest{
		BusinessID: input.BusinessID,
		From:       input.From,
		Message:    input.Message,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, reply)
}
