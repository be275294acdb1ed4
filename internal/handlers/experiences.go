package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

type ExperiencesHandler struct {
	experiences store.ExperienceStore
}

func NewExperiencesHandler(experiences store.ExperienceStore) *ExperiencesHandler {
	return &ExperiencesHandler{experiences: experiences}
}

// ListExperiences godoc
// @Summary     List the experience timeline
// @Tags        experiences
// @Produce     json
// @Success     200 {array}  models.ExperienceItem
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/experiences [get]
func (h *ExperiencesHandler) ListExperiences(c *gin.Context) {
	items, err := h.experiences.ListExperiences(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to fetch experiences")
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateExperience godoc
// @Summary     Add an experience entry
// @Tags        experiences
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ExperienceInput true "Experience"
// @Success     201 {object} models.ExperienceItem
// @Failure     400 {object} models.ErrorResponse
// @Router      /api/experiences [post]
func (h *ExperiencesHandler) CreateExperience(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.experiences.CreateExperience(c.Request.Context(), userID, req)
	if err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to create experience")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateExperience godoc
// @Summary     Update an experience entry
// @Tags        experiences
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                 true "Experience ID (UUID)"
// @Param       request body models.ExperienceInput true "Experience"
// @Success     200 {object} models.ExperienceItem
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/experiences/{id} [put]
func (h *ExperiencesHandler) UpdateExperience(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, c.Param("id"), "Experience")
	if !ok {
		return
	}

	var req models.ExperienceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	item, err := h.experiences.UpdateExperience(c.Request.Context(), id, userID, req)
	if err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to update experience")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteExperience godoc
// @Summary     Delete an experience entry
// @Tags        experiences
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Experience ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/experiences/{id} [delete]
func (h *ExperiencesHandler) DeleteExperience(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, c.Param("id"), "Experience")
	if !ok {
		return
	}

	if err := h.experiences.DeleteExperience(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "Experience not found", "Failed to delete experience")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
