// controllers/common.go
package controllers

import (
	"errors"
	"net/http"

	"slotwise-backend/services/availability"
	"slotwise-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// respondDomainError maps engine/repository failures onto HTTP codes.
// Accessor failures are never presented as empty availability.
func respondDomainError(c *gin.Context, err error) {
	var nf *availability.NotFoundError
	var ae *availability.AccessorError
	switch {
	case errors.As(err, &nf):
		utils.RespondWithError(c, http.StatusNotFound, nf.Error())
	case errors.As(err, &ae):
		utils.GetLogger().Error("accessor failure", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "data store unavailable")
	default:
		utils.GetLogger().Error("unexpected error", zap.Error(err))
		utils.RespondWithError(c, http.StatusInternalServerError, "internal error")
	}
}

// parseUUIDQuery reads a required uuid query parameter, writing the 400
// itself when missing or malformed.
func parseUUIDQuery(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		utils.RespondWithError(c, http.StatusBadRequest, name+" is required")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// optionalUUIDQuery reads an optional uuid query parameter.
func optionalUUIDQuery(c *gin.Context, name string) (*uuid.UUID, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid "+name)
		return nil, false
	}
	return &id, true
}
