package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/supabase-community/postgrest-go"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

const projectSelect = "*,categories:project_categories(category:categories(id,name,description))"

// RestStore implements store.Store on top of Supabase's PostgREST API.
type RestStore struct {
	client *Client
}

var _ store.Store = (*RestStore)(nil)

func NewRestStore(client *Client) *RestStore {
	return &RestStore{client: client}
}

// projectRow is a projects row with its embedded join rows as PostgREST
// returns them: categories: [{category: {...}}].
type projectRow struct {
	models.Project
	Categories []struct {
		Category *models.Category `json:"category"`
	} `json:"categories"`
}

func (r projectRow) flatten() models.Project {
	p := r.Project
	p.Categories = make([]models.Category, 0, len(r.Categories))
	for _, pc := range r.Categories {
		if pc.Category != nil {
			p.Categories = append(p.Categories, *pc.Category)
		}
	}
	return p
}

type projectWrite struct {
	models.ProjectInput
	UserID uuid.UUID `json:"user_id"`
}

type experienceWrite struct {
	models.ExperienceInput
	UserID    *uuid.UUID `json:"user_id,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

func (s *RestStore) from(table string) *postgrest.QueryBuilder {
	return s.client.Supabase.From(table)
}

func (s *RestStore) ListProjects(ctx context.Context, includeUnpublished bool) ([]models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	query := s.from("projects").Select(projectSelect, "", false)
	if !includeUnpublished {
		query = query.Eq("is_published", "true")
	}

	var rows []projectRow
	if _, err := query.Order("created_at", &postgrest.OrderOpts{Ascending: false}).ExecuteTo(&rows); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	projects := make([]models.Project, len(rows))
	for i, row := range rows {
		projects[i] = row.flatten()
	}
	return projects, nil
}

func (s *RestStore) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []projectRow
	_, err := s.from("projects").
		Select(projectSelect, "", false).
		Eq("id", id.String()).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}

	project := rows[0].flatten()
	return &project, nil
}

func (s *RestStore) CreateProject(ctx context.Context, userID uuid.UUID, in models.ProjectInput) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []projectRow
	_, err := s.from("projects").
		Insert(projectWrite{ProjectInput: in, UserID: userID}, false, "", "representation", "").
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("failed to create project: empty response")
	}

	project := rows[0].flatten()
	return &project, nil
}

func (s *RestStore) UpdateProject(ctx context.Context, id, userID uuid.UUID, in models.ProjectInput) (*models.Project, error) {
	return s.updateProject(ctx, id, userID, in)
}

func (s *RestStore) SetPublished(ctx context.Context, id, userID uuid.UUID, published bool) (*models.Project, error) {
	return s.updateProject(ctx, id, userID, map[string]interface{}{"is_published": published})
}

func (s *RestStore) updateProject(ctx context.Context, id, userID uuid.UUID, value interface{}) (*models.Project, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []projectRow
	_, err := s.from("projects").
		Update(value, "representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		ExecuteTo(&rows)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}

	project := rows[0].flatten()
	return &project, nil
}

// SetProjectCategories replaces the project's category links. The delete and
// the insert are two requests; a failed insert leaves the project without
// categories.
func (s *RestStore) SetProjectCategories(ctx context.Context, projectID uuid.UUID, categoryIDs []uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, _, err := s.from("project_categories").
		Delete("minimal", "").
		Eq("project_id", projectID.String()).
		Execute(); err != nil {
		return fmt.Errorf("failed to clear project categories: %w", err)
	}

	if len(categoryIDs) == 0 {
		return nil
	}

	links := make([]models.ProjectCategory, len(categoryIDs))
	for i, categoryID := range categoryIDs {
		links[i] = models.ProjectCategory{ProjectID: projectID, CategoryID: categoryID}
	}
	if _, _, err := s.from("project_categories").
		Insert(links, false, "", "minimal", "").
		Execute(); err != nil {
		return fmt.Errorf("failed to link project categories: %w", err)
	}
	return nil
}

// DeleteProject removes the join rows and then the project. There is no
// transaction over PostgREST: if the second delete fails the project stays
// without categories.
func (s *RestStore) DeleteProject(ctx context.Context, id, userID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var owned []struct {
		ID uuid.UUID `json:"id"`
	}
	_, err := s.from("projects").
		Select("id", "", false).
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		ExecuteTo(&owned)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	if len(owned) == 0 {
		return store.ErrNotFound
	}

	if _, _, err := s.from("project_categories").
		Delete("minimal", "").
		Eq("project_id", id.String()).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete project categories: %w", err)
	}

	if _, _, err := s.from("projects").
		Delete("minimal", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		Execute(); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	return nil
}

func (s *RestStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var categories []models.Category
	_, err := s.from("categories").
		Select("*", "", false).
		Order("name", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&categories)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *RestStore) ListExperiences(ctx context.Context) ([]models.ExperienceItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []models.ExperienceItem
	_, err := s.from("experiences").
		Select("*", "", false).
		Order("order_index", &postgrest.OrderOpts{Ascending: true}).
		ExecuteTo(&items)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	if items == nil {
		items = []models.ExperienceItem{}
	}
	return items, nil
}

func (s *RestStore) CreateExperience(ctx context.Context, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var items []models.ExperienceItem
	_, err := s.from("experiences").
		Insert(experienceWrite{ExperienceInput: in, UserID: &userID}, false, "", "representation", "").
		ExecuteTo(&items)
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("failed to create experience: empty response")
	}
	return &items[0], nil
}

func (s *RestStore) UpdateExperience(ctx context.Context, id, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var items []models.ExperienceItem
	_, err := s.from("experiences").
		Update(experienceWrite{ExperienceInput: in, UpdatedAt: &now}, "representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		ExecuteTo(&items)
	if err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	if len(items) == 0 {
		return nil, store.ErrNotFound
	}
	return &items[0], nil
}

func (s *RestStore) DeleteExperience(ctx context.Context, id, userID uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var items []models.ExperienceItem
	_, err := s.from("experiences").
		Delete("representation", "").
		Eq("id", id.String()).
		Eq("user_id", userID.String()).
		ExecuteTo(&items)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if len(items) == 0 {
		return store.ErrNotFound
	}
	return nil
}
