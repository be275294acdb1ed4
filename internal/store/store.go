// Package store declares the data-access contracts the HTTP layer depends on.
// Implementations live in internal/supabase.
package store

//go:generate mockgen -source=store.go -destination=mock_store/mock_store.go -package=mock_store

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"portfolio-backend/internal/models"
)

// ErrNotFound is returned when a row does not exist or is not owned by the caller.
var ErrNotFound = errors.New("not found")

type ProjectStore interface {
	ListProjects(ctx context.Context, includeUnpublished bool) ([]models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, userID uuid.UUID, in models.ProjectInput) (*models.Project, error)
	UpdateProject(ctx context.Context, id, userID uuid.UUID, in models.ProjectInput) (*models.Project, error)
	SetPublished(ctx context.Context, id, userID uuid.UUID, published bool) (*models.Project, error)
	SetProjectCategories(ctx context.Context, projectID uuid.UUID, categoryIDs []uuid.UUID) error
	DeleteProject(ctx context.Context, id, userID uuid.UUID) error
}

type CategoryStore interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type ExperienceStore interface {
	ListExperiences(ctx context.Context) ([]models.ExperienceItem, error)
	CreateExperience(ctx context.Context, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error)
	UpdateExperience(ctx context.Context, id, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error)
	DeleteExperience(ctx context.Context, id, userID uuid.UUID) error
}

// Store is the full data layer.
type Store interface {
	ProjectStore
	CategoryStore
	ExperienceStore
}

// TogglePublished flips a project's is_published flag and returns the
// updated row. It is a read followed by a write; concurrent toggles of the
// same row are last-writer-wins.
func TogglePublished(ctx context.Context, s ProjectStore, id, userID uuid.UUID) (*models.Project, error) {
	project, err := s.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, ErrNotFound
	}
	return s.SetPublished(ctx, id, userID, !project.IsPublished)
}
