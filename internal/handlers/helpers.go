package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(middleware.UserIDKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid user id"})
		return uuid.Nil, false
	}
	return userID, true
}

func parseID(c *gin.Context, raw, label string) (uuid.UUID, bool) {
	if raw == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: label + " ID is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Invalid " + label + " ID"})
		return uuid.Nil, false
	}
	return id, true
}

// respondStoreError maps store.ErrNotFound to 404 and anything else to 500.
func respondStoreError(c *gin.Context, err error, notFound, failure string) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: notFound})
		return
	}
	log.Error().Err(err).Str("path", c.FullPath()).Msg(failure)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   failure,
		Message: err.Error(),
	})
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "Invalid request body",
		Message: err.Error(),
	})
}
