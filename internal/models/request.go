package models

import "github.com/google/uuid"

// ProjectRequest is the body of POST /api/projects and PUT /api/projects/{id}.
// CategoryIDs replaces the project's category links when present.
type ProjectRequest struct {
	ProjectInput
	CategoryIDs []uuid.UUID `json:"category_ids,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
