package types

import (
	"github.com/foliocraft/backend/internal/models"
)

// RegisterRequest represents the request body for account registration.
// The client submits the credential under "password_hash".
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password_hash" binding:"required,min=6"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password_hash" binding:"required"`
}

// PasswordResetRequest represents the request body for a reset request
type PasswordResetRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// UpdateProfileRequest carries a partial profile update. Nil fields were
// omitted and must not overwrite stored values.
type UpdateProfileRequest struct {
	PictureURL   *string            `json:"picture_url"`
	CoverURL     *string            `json:"cover_url"`
	Bio          *string            `json:"bio"`
	ContactEmail *string            `json:"contact_email" binding:"omitempty,email"`
	Phone        *string            `json:"phone"`
	SocialLinks  *map[string]string `json:"social_links"`
}

// Updates builds the assignment map from exactly the supplied fields.
// Column names are fixed here, never derived from input keys.
func (r *UpdateProfileRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.PictureURL != nil {
		updates["picture_url"] = *r.PictureURL
	}
	if r.CoverURL != nil {
		updates["cover_url"] = *r.CoverURL
	}
	if r.Bio != nil {
		updates["bio"] = *r.Bio
	}
	if r.ContactEmail != nil {
		updates["contact_email"] = *r.ContactEmail
	}
	if r.Phone != nil {
		updates["phone"] = *r.Phone
	}
	if r.SocialLinks != nil {
		updates["social_links"] = models.JSONStringMap(*r.SocialLinks)
	}
	return updates
}

// UpsertSettingsRequest carries a partial settings write; the first write
// for a user creates the row.
type UpsertSettingsRequest struct {
	ColorScheme *map[string]string `json:"color_scheme"`
	TemplateID  *string            `json:"template_id"`
	Font        *string            `json:"font"`
}

func (r *UpsertSettingsRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.ColorScheme != nil {
		updates["color_scheme"] = models.JSONStringMap(*r.ColorScheme)
	}
	if r.TemplateID != nil {
		updates["template_id"] = *r.TemplateID
	}
	if r.Font != nil {
		updates["font"] = *r.Font
	}
	return updates
}

// CreateProjectRequest represents the request body for creating a project
type CreateProjectRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	ProjectURL  string   `json:"project_url" binding:"omitempty,url"`
}

// UpdateProjectRequest represents a partial project update
type UpdateProjectRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Images      *[]string `json:"images"`
	ProjectURL  *string   `json:"project_url" binding:"omitempty,url"`
}

func (r *UpdateProjectRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.Images != nil {
		updates["images"] = models.JSONStringArray(*r.Images)
	}
	if r.ProjectURL != nil {
		updates["project_url"] = *r.ProjectURL
	}
	return updates
}

// CreateSkillRequest represents the request body for creating a skill
type CreateSkillRequest struct {
	Name        string `json:"name" binding:"required"`
	Proficiency *int   `json:"proficiency" binding:"required,min=0,max=100"`
}

// UpdateSkillRequest represents a partial skill update
type UpdateSkillRequest struct {
	Name        *string `json:"name"`
	Proficiency *int    `json:"proficiency" binding:"omitempty,min=0,max=100"`
}

func (r *UpdateSkillRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Name != nil {
		updates["name"] = *r.Name
	}
	if r.Proficiency != nil {
		updates["proficiency"] = *r.Proficiency
	}
	return updates
}

// CreateTimelineEntryRequest represents the request body for creating a
// timeline entry. A missing end_date means the entry is ongoing.
type CreateTimelineEntryRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartDate   Date   `json:"start_date" binding:"required"`
	EndDate     *Date  `json:"end_date"`
}

// UpdateTimelineEntryRequest represents a partial timeline update. EndDate
// uses NullableDate so an explicit null clears the stored date while an
// omitted field leaves it untouched.
type UpdateTimelineEntryRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	StartDate   *Date        `json:"start_date"`
	EndDate     NullableDate `json:"end_date"`
}

func (r *UpdateTimelineEntryRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Description != nil {
		updates["description"] = *r.Description
	}
	if r.StartDate != nil {
		updates["start_date"] = r.StartDate.Time
	}
	if r.EndDate.Present {
		if r.EndDate.Valid {
			updates["end_date"] = r.EndDate.Time
		} else {
			updates["end_date"] = nil
		}
	}
	return updates
}

// CreateTestimonialRequest represents the request body for a testimonial
type CreateTestimonialRequest struct {
	ClientName string `json:"client_name" binding:"required"`
	Feedback   string `json:"feedback" binding:"required"`
}

// UpdateTestimonialRequest represents a partial testimonial update
type UpdateTestimonialRequest struct {
	ClientName *string `json:"client_name"`
	Feedback   *string `json:"feedback"`
}

func (r *UpdateTestimonialRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.ClientName != nil {
		updates["client_name"] = *r.ClientName
	}
	if r.Feedback != nil {
		updates["feedback"] = *r.Feedback
	}
	return updates
}

// CreateBlogPostRequest represents the request body for a blog post
type CreateBlogPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// UpdateBlogPostRequest represents a partial blog post update
type UpdateBlogPostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (r *UpdateBlogPostRequest) Updates() map[string]interface{} {
	updates := map[string]interface{}{}
	if r.Title != nil {
		updates["title"] = *r.Title
	}
	if r.Content != nil {
		updates["content"] = *r.Content
	}
	return updates
}

// CreateCommentRequest represents the request body for a visitor comment
type CreateCommentRequest struct {
	VisitorName *string `json:"visitor_name"`
	Content     string  `json:"content" binding:"required"`
}

// ContactRequest represents the request body for a visitor message
type ContactRequest struct {
	VisitorEmail *string `json:"visitor_email" binding:"omitempty,email"`
	Message      string  `json:"message" binding:"required"`
}
