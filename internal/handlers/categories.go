package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"portfolio-backend/internal/store"
)

type CategoriesHandler struct {
	categories store.CategoryStore
}

func NewCategoriesHandler(categories store.CategoryStore) *CategoriesHandler {
	return &CategoriesHandler{categories: categories}
}

// ListCategories godoc
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array}  models.Category
// @Failure     500 {object} models.ErrorResponse
// @Router      /api/categories [get]
func (h *CategoriesHandler) ListCategories(c *gin.Context) {
	categories, err := h.categories.ListCategories(c.Request.Context())
	if err != nil {
		respondStoreError(c, err, "Category not found", "Failed to fetch categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
