package types

import (
	"time"

	"github.com/google/uuid"

	"github.com/foliocraft/backend/internal/models"
)

// PublicUser is the visitor-facing slice of a user record.
type PublicUser struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PortfolioView is the aggregate returned by the public portfolio read.
type PortfolioView struct {
	User         PublicUser             `json:"user"`
	Profile      models.Profile         `json:"profile"`
	Settings     *models.Settings       `json:"settings,omitempty"`
	Projects     []models.Project       `json:"projects"`
	Skills       []models.Skill         `json:"skills"`
	Timeline     []models.TimelineEntry `json:"timeline"`
	Testimonials []models.Testimonial   `json:"testimonials"`
	BlogPosts    []models.BlogPost      `json:"blog_posts"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UploadResult describes a stored upload.
type UploadResult struct {
	URL          string `json:"url"`
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	Size         int64  `json:"size"`
}
