package store_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
	"portfolio-backend/internal/store/mock_store"
)

func TestTogglePublished(t *testing.T) {
	ctrl := gomock.NewController(t)
	projects := mock_store.NewMockProjectStore(ctrl)
	ctx := context.Background()
	owner := uuid.New()
	id := uuid.New()

	t.Run("flips the flag", func(t *testing.T) {
		projects.EXPECT().GetProject(ctx, id).Return(&models.Project{ID: id, UserID: owner, IsPublished: false}, nil)
		projects.EXPECT().SetPublished(ctx, id, owner, true).Return(&models.Project{ID: id, UserID: owner, IsPublished: true}, nil)

		got, err := store.TogglePublished(ctx, projects, id, owner)
		require.NoError(t, err)
		assert.True(t, got.IsPublished)
	})

	t.Run("double toggle restores the original value", func(t *testing.T) {
		state := true
		projects.EXPECT().GetProject(ctx, id).DoAndReturn(func(context.Context, uuid.UUID) (*models.Project, error) {
			return &models.Project{ID: id, UserID: owner, IsPublished: state}, nil
		}).Times(2)
		projects.EXPECT().SetPublished(ctx, id, owner, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _ uuid.UUID, published bool) (*models.Project, error) {
				state = published
				return &models.Project{ID: id, UserID: owner, IsPublished: state}, nil
			}).Times(2)

		_, err := store.TogglePublished(ctx, projects, id, owner)
		require.NoError(t, err)
		assert.False(t, state)
		_, err = store.TogglePublished(ctx, projects, id, owner)
		require.NoError(t, err)
		assert.True(t, state)
	})

	t.Run("other owner", func(t *testing.T) {
		projects.EXPECT().GetProject(ctx, id).Return(&models.Project{ID: id, UserID: uuid.New()}, nil)

		_, err := store.TogglePublished(ctx, projects, id, owner)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})
}
