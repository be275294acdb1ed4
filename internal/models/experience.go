package models

import (
	"time"

	"github.com/google/uuid"
)

type ExperienceItem struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description *string   `json:"description"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ExperienceInput struct {
	Title       string  `json:"title" binding:"required"`
	Company     string  `json:"company"`
	Period      string  `json:"period"`
	Description *string `json:"description"`
	OrderIndex  int     `json:"order_index"`
}
