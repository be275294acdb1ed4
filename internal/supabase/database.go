package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/store"
)

// DatabaseClient implements store.Store with direct SQL against the Supabase
// Postgres instance. Multi-statement writes run in a transaction.
type DatabaseClient struct {
	db *sql.DB
}

var _ store.Store = (*DatabaseClient)(nil)

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

const projectColumns = `id, user_id, title, description, image, demourl, githuburl, videourl,
	video_file, additionalimages, challenges, solutions, impact, tags, is_published, created_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.Image,
		&p.DemoURL, &p.GithubURL, &p.VideoURL, &p.VideoFile,
		pq.Array(&p.AdditionalImages), pq.Array(&p.Challenges), pq.Array(&p.Solutions),
		&p.Impact, pq.Array(&p.Tags), &p.IsPublished, &p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Categories = []models.Category{}
	return &p, nil
}

// textArray binds a list as a non-null text[] value.
func textArray(l models.StringList) interface{} {
	if l == nil {
		l = models.StringList{}
	}
	return pq.Array([]string(l))
}

func (d *DatabaseClient) ListProjects(ctx context.Context, includeUnpublished bool) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects`
	if !includeUnpublished {
		query += ` WHERE is_published = true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := d.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if err := d.attachCategories(ctx, projects); err != nil {
		return nil, err
	}
	return projects, nil
}

func (d *DatabaseClient) attachCategories(ctx context.Context, projects []models.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]string, len(projects))
	index := make(map[uuid.UUID]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID.String()
		index[p.ID] = i
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT pc.project_id, c.id, c.name, c.description
		FROM project_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.project_id = ANY($1::uuid[])
		ORDER BY c.name
	`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to load project categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID uuid.UUID
		var c models.Category
		if err := rows.Scan(&projectID, &c.ID, &c.Name, &c.Description); err != nil {
			return fmt.Errorf("failed to scan category: %w", err)
		}
		if i, ok := index[projectID]; ok {
			projects[i].Categories = append(projects[i].Categories, c)
		}
	}
	return rows.Err()
}

func (d *DatabaseClient) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	p, err := scanProject(d.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	projects := []models.Project{*p}
	if err := d.attachCategories(ctx, projects); err != nil {
		return nil, err
	}
	return &projects[0], nil
}

func (d *DatabaseClient) CreateProject(ctx context.Context, userID uuid.UUID, in models.ProjectInput) (*models.Project, error) {
	p, err := scanProject(d.db.QueryRowContext(ctx, `
		INSERT INTO projects (user_id, title, description, image, demourl, githuburl, videourl,
			video_file, additionalimages, challenges, solutions, impact, tags, is_published)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, COALESCE($14, false))
		RETURNING `+projectColumns,
		userID, in.Title, in.Description, in.Image, in.DemoURL, in.GithubURL, in.VideoURL,
		in.VideoFile, textArray(in.AdditionalImages), textArray(in.Challenges),
		textArray(in.Solutions), in.Impact, textArray(in.Tags), in.IsPublished,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return p, nil
}

func (d *DatabaseClient) UpdateProject(ctx context.Context, id, userID uuid.UUID, in models.ProjectInput) (*models.Project, error) {
	p, err := scanProject(d.db.QueryRowContext(ctx, `
		UPDATE projects SET
			title = $3, description = $4, image = $5, demourl = $6, githuburl = $7,
			videourl = $8, video_file = $9, additionalimages = $10, challenges = $11,
			solutions = $12, impact = $13, tags = $14, is_published = COALESCE($15, is_published)
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns,
		id, userID, in.Title, in.Description, in.Image, in.DemoURL, in.GithubURL,
		in.VideoURL, in.VideoFile, textArray(in.AdditionalImages), textArray(in.Challenges),
		textArray(in.Solutions), in.Impact, textArray(in.Tags), in.IsPublished,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

func (d *DatabaseClient) SetPublished(ctx context.Context, id, userID uuid.UUID, published bool) (*models.Project, error) {
	p, err := scanProject(d.db.QueryRowContext(ctx, `
		UPDATE projects SET is_published = $3
		WHERE id = $1 AND user_id = $2
		RETURNING `+projectColumns,
		id, userID, published,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return p, nil
}

func (d *DatabaseClient) SetProjectCategories(ctx context.Context, projectID uuid.UUID, categoryIDs []uuid.UUID) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM project_categories WHERE project_id = $1`, projectID); err != nil {
			return fmt.Errorf("failed to clear project categories: %w", err)
		}
		for _, categoryID := range categoryIDs {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO project_categories (project_id, category_id) VALUES ($1, $2)`,
				projectID, categoryID); err != nil {
				return fmt.Errorf("failed to link project categories: %w", err)
			}
		}
		return nil
	})
}

func (d *DatabaseClient) DeleteProject(ctx context.Context, id, userID uuid.UUID) error {
	return d.withTx(ctx, func(tx *sql.Tx) error {
		var owned bool
		err := tx.QueryRowContext(ctx,
			`SELECT true FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			id, userID).Scan(&owned)
		if errors.Is(err, sql.ErrNoRows) {
			return store.ErrNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get project: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM project_categories WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete project categories: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM projects WHERE id = $1 AND user_id = $2`, id, userID); err != nil {
			return fmt.Errorf("failed to delete project: %w", err)
		}
		return nil
	})
}

func (d *DatabaseClient) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func (d *DatabaseClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, name, description FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

const experienceColumns = `id, user_id, title, company, period, description, order_index, created_at, updated_at`

func scanExperience(row rowScanner) (*models.ExperienceItem, error) {
	var e models.ExperienceItem
	err := row.Scan(&e.ID, &e.UserID, &e.Title, &e.Company, &e.Period,
		&e.Description, &e.OrderIndex, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *DatabaseClient) ListExperiences(ctx context.Context) ([]models.ExperienceItem, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+experienceColumns+` FROM experiences ORDER BY order_index ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiences: %w", err)
	}
	defer rows.Close()

	items := []models.ExperienceItem{}
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan experience: %w", err)
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (d *DatabaseClient) CreateExperience(ctx context.Context, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error) {
	e, err := scanExperience(d.db.QueryRowContext(ctx, `
		INSERT INTO experiences (user_id, title, company, period, description, order_index)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+experienceColumns,
		userID, in.Title, in.Company, in.Period, in.Description, in.OrderIndex,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create experience: %w", err)
	}
	return e, nil
}

func (d *DatabaseClient) UpdateExperience(ctx context.Context, id, userID uuid.UUID, in models.ExperienceInput) (*models.ExperienceItem, error) {
	e, err := scanExperience(d.db.QueryRowContext(ctx, `
		UPDATE experiences SET
			title = $3, company = $4, period = $5, description = $6, order_index = $7,
			updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING `+experienceColumns,
		id, userID, in.Title, in.Company, in.Period, in.Description, in.OrderIndex,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update experience: %w", err)
	}
	return e, nil
}

func (d *DatabaseClient) DeleteExperience(ctx context.Context, id, userID uuid.UUID) error {
	res, err := d.db.ExecContext(ctx,
		`DELETE FROM experiences WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete experience: %w", err)
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
