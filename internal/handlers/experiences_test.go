package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
	"portfolio-backend/internal/store/mock_store"
)

func TestExperiences(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	experiences := mock_store.NewMockExperienceStore(ctrl)
	h := handlers.NewExperiencesHandler(experiences)
	userID := uuid.New()

	router := gin.New()
	router.Use(withUser(userID))
	router.GET("/api/experiences", h.ListExperiences)
	router.POST("/api/experiences", h.CreateExperience)
	router.PUT("/api/experiences/:id", h.UpdateExperience)
	router.DELETE("/api/experiences/:id", h.DeleteExperience)

	t.Run("list", func(t *testing.T) {
		experiences.EXPECT().ListExperiences(gomock.Any()).Return([]models.ExperienceItem{
			{Title: "Engineer", OrderIndex: 1},
			{Title: "Intern", OrderIndex: 2},
		}, nil)

		w := doJSON(router, http.MethodGet, "/api/experiences", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"order_index":1`)
	})

	t.Run("create requires a title", func(t *testing.T) {
		w := doJSON(router, http.MethodPost, "/api/experiences", map[string]string{"company": "Acme"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create", func(t *testing.T) {
		experiences.EXPECT().
			CreateExperience(gomock.Any(), userID, models.ExperienceInput{Title: "Engineer", Company: "Acme", OrderIndex: 3}).
			Return(&models.ExperienceItem{ID: uuid.New(), Title: "Engineer"}, nil)

		w := doJSON(router, http.MethodPost, "/api/experiences", map[string]interface{}{
			"title": "Engineer", "company": "Acme", "order_index": 3,
		})
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("update missing row", func(t *testing.T) {
		id := uuid.New()
		experiences.EXPECT().UpdateExperience(gomock.Any(), id, userID, gomock.Any()).Return(nil, store.ErrNotFound)

		w := doJSON(router, http.MethodPut, "/api/experiences/"+id.String(), map[string]string{"title": "x"})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("delete", func(t *testing.T) {
		id := uuid.New()
		experiences.EXPECT().DeleteExperience(gomock.Any(), id, userID).Return(nil)

		w := doJSON(router, http.MethodDelete, "/api/experiences/"+id.String(), nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
