package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store/mock_store"
)

func TestDashboardStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	projects := mock_store.NewMockProjectStore(ctrl)

	router := gin.New()
	router.GET("/api/dashboard/stats", handlers.NewDashboardHandler(projects).Stats)

	repo := "https://github.com/octocat/hello-world"
	empty := ""
	projects.EXPECT().ListProjects(gomock.Any(), true).Return([]models.Project{
		{IsPublished: true, GithubURL: &repo},
		{IsPublished: false, GithubURL: &empty},
		{IsPublished: true},
	}, nil)

	w := doJSON(router, http.MethodGet, "/api/dashboard/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, models.StatsResponse{
		TotalProjects:       3,
		PublishedProjects:   2,
		UnpublishedProjects: 1,
		GithubProjects:      1,
	}, stats)
}
