package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment is visitor-writable: any caller may create one against a project.
type Comment struct {
	ID          uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	ProjectID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"project_id"`
	VisitorName *string   `gorm:"size:100" json:"visitor_name"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
}

func (c *Comment) BeforeCreate(*gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// VisitorMessage is a contact-form submission addressed to a portfolio owner.
type VisitorMessage struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID       uuid.UUID `gorm:"type:varchar(36);not null;index" json:"user_id"`
	VisitorEmail *string   `gorm:"size:255" json:"visitor_email"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	SentAt       time.Time `gorm:"autoCreateTime" json:"sent_at"`
}

func (m *VisitorMessage) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Analytics is one-per-user, lazily created with zeroed counters on first
// read. The unique index on user_id is what makes the lazy creation safe
// under concurrent first reads.
type Analytics struct {
	ID              uuid.UUID    `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID          uuid.UUID    `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	VisitCount      int64        `gorm:"not null;default:0" json:"visit_count"`
	PopularProjects JSONValueMap `gorm:"type:jsonb;not null;default:'{}'" json:"popular_projects"`
	Interactions    JSONValueMap `gorm:"type:jsonb;not null;default:'{}'" json:"interactions"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (a *Analytics) BeforeCreate(*gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
