package models

import "time"

type SuccessResponse struct {
	Success bool `json:"success"`
}

type UploadResponse struct {
	URL string `json:"url"`
}

type StatsResponse struct {
	TotalProjects       int `json:"totalProjects"`
	PublishedProjects   int `json:"publishedProjects"`
	UnpublishedProjects int `json:"unpublishedProjects"`
	GithubProjects      int `json:"githubProjects"`
	TotalViews          int `json:"totalViews"`
}

type SessionResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserInfo  `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
