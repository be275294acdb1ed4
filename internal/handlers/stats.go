package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

type DashboardHandler struct {
	projects store.ProjectStore
}

func NewDashboardHandler(projects store.ProjectStore) *DashboardHandler {
	return &DashboardHandler{projects: projects}
}

// Stats godoc
// @Summary     Dashboard counters
// @Description Project totals for the admin dashboard. View tracking is not implemented, so totalViews is always 0.
// @Tags        dashboard
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.StatsResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	projects, err := h.projects.ListProjects(c.Request.Context(), true)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to fetch stats")
		return
	}

	var stats models.StatsResponse
	stats.TotalProjects = len(projects)
	for i := range projects {
		if projects[i].IsPublished {
			stats.PublishedProjects++
		}
		if projects[i].HasGithubURL() {
			stats.GithubProjects++
		}
	}
	stats.UnpublishedProjects = stats.TotalProjects - stats.PublishedProjects

	c.JSON(http.StatusOK, stats)
}
