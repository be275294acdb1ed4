package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

type ProjectsHandler struct {
	projects store.ProjectStore
}

func NewProjectsHandler(projects store.ProjectStore) *ProjectsHandler {
	return &ProjectsHandler{projects: projects}
}

// ListProjects godoc
// @Summary     List projects
// @Description Published projects with their categories. includeUnpublished=true needs a session and returns every project.
// @Tags        projects
// @Produce     json
// @Param       includeUnpublished query bool false "Include unpublished projects"
// @Success     200 {array}  models.Project
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects [get]
func (h *ProjectsHandler) ListProjects(c *gin.Context) {
	includeUnpublished := c.Query("includeUnpublished") == "true"

	projects, err := h.projects.ListProjects(c.Request.Context(), includeUnpublished)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to fetch projects")
		return
	}
	c.JSON(http.StatusOK, projects)
}

// GetProject godoc
// @Summary     Get a project
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Project ID (UUID)"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/projects/{id} [get]
func (h *ProjectsHandler) GetProject(c *gin.Context) {
	id, ok := parseID(c, c.Param("id"), "Project")
	if !ok {
		return
	}

	project, err := h.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to fetch project")
		return
	}
	c.JSON(http.StatusOK, project)
}

func validateProject(in models.ProjectInput) bool {
	return strings.TrimSpace(in.Title) != "" &&
		strings.TrimSpace(in.Description) != "" &&
		strings.TrimSpace(in.Image) != ""
}

// CreateProject godoc
// @Summary     Create a project
// @Description Array fields accept a JSON array or a comma-separated string. category_ids links categories.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       request body models.ProjectRequest true "Project"
// @Success     201 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects [post]
func (h *ProjectsHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validateProject(req.ProjectInput) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title, description and image are required"})
		return
	}

	ctx := c.Request.Context()
	project, err := h.projects.CreateProject(ctx, userID, req.ProjectInput)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to create project")
		return
	}

	if len(req.CategoryIDs) > 0 {
		if err := h.projects.SetProjectCategories(ctx, project.ID, req.CategoryIDs); err != nil {
			respondStoreError(c, err, "Project not found", "Failed to link categories")
			return
		}
		if project, err = h.projects.GetProject(ctx, project.ID); err != nil {
			respondStoreError(c, err, "Project not found", "Failed to fetch project")
			return
		}
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject godoc
// @Summary     Update a project
// @Description Replaces the writable columns. category_ids, when present, replaces the category links.
// @Tags        projects
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                true "Project ID (UUID)"
// @Param       request body models.ProjectRequest true "Project"
// @Success     200 {object} models.Project
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id} [put]
func (h *ProjectsHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, c.Param("id"), "Project")
	if !ok {
		return
	}

	var req models.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if !validateProject(req.ProjectInput) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Title, description and image are required"})
		return
	}

	ctx := c.Request.Context()
	project, err := h.projects.UpdateProject(ctx, id, userID, req.ProjectInput)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to update project")
		return
	}

	if req.CategoryIDs != nil {
		if err := h.projects.SetProjectCategories(ctx, id, req.CategoryIDs); err != nil {
			respondStoreError(c, err, "Project not found", "Failed to link categories")
			return
		}
		if project, err = h.projects.GetProject(ctx, id); err != nil {
			respondStoreError(c, err, "Project not found", "Failed to fetch project")
			return
		}
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject godoc
// @Summary     Delete a project
// @Description Removes the project's category links, then the project.
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Project ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/projects/{id} [delete]
func (h *ProjectsHandler) DeleteProject(c *gin.Context) {
	h.deleteProject(c, c.Param("id"))
}

// DeleteProjectByQuery godoc
// @Summary     Delete a project by query parameter
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       id query string true "Project ID (UUID)"
// @Success     200 {object} models.SuccessResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/projects [delete]
func (h *ProjectsHandler) DeleteProjectByQuery(c *gin.Context) {
	h.deleteProject(c, c.Query("id"))
}

func (h *ProjectsHandler) deleteProject(c *gin.Context, rawID string) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, rawID, "Project")
	if !ok {
		return
	}

	if err := h.projects.DeleteProject(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "Project not found", "Failed to delete project")
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}

// TogglePublish godoc
// @Summary     Flip a project's published flag
// @Tags        projects
// @Produce     json
// @Security    Bearer
// @Param       id path string true "Project ID (UUID)"
// @Success     200 {object} models.Project
// @Failure     404 {object} models.ErrorResponse
// @Router      /api/projects/{id}/toggle-publish [post]
func (h *ProjectsHandler) TogglePublish(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, c.Param("id"), "Project")
	if !ok {
		return
	}

	project, err := store.TogglePublished(c.Request.Context(), h.projects, id, userID)
	if err != nil {
		respondStoreError(c, err, "Project not found", "Failed to update project")
		return
	}
	c.JSON(http.StatusOK, project)
}
