package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Image            string     `json:"image"`
	DemoURL          *string    `json:"demourl"`
	GithubURL        *string    `json:"githuburl"`
	VideoURL         *string    `json:"videourl"`
	VideoFile        *string    `json:"video_file"`
	AdditionalImages []string   `json:"additionalimages"`
	Challenges       []string   `json:"challenges"`
	Solutions        []string   `json:"solutions"`
	Impact           *string    `json:"impact"`
	Tags             []string   `json:"tags"`
	IsPublished      bool       `json:"is_published"`
	CreatedAt        time.Time  `json:"created_at"`
	Categories       []Category `json:"categories"`
}

// HasGithubURL reports whether the project links to a repository.
func (p *Project) HasGithubURL() bool {
	return p.GithubURL != nil && *p.GithubURL != ""
}

// ProjectInput holds the writable columns of a project row. It is the body
// sent to the database on insert and update. A nil IsPublished leaves the
// flag as it is on update and defaults to unpublished on insert.
type ProjectInput struct {
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	Image            string     `json:"image"`
	DemoURL          *string    `json:"demourl"`
	GithubURL        *string    `json:"githuburl"`
	VideoURL         *string    `json:"videourl"`
	VideoFile        *string    `json:"video_file"`
	AdditionalImages StringList `json:"additionalimages"`
	Challenges       StringList `json:"challenges"`
	Solutions        StringList `json:"solutions"`
	Impact           *string    `json:"impact"`
	Tags             StringList `json:"tags"`
	IsPublished      *bool      `json:"is_published,omitempty"`
}

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}

type ProjectCategory struct {
	ProjectID  uuid.UUID `json:"project_id"`
	CategoryID uuid.UUID `json:"category_id"`
}
