package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// Profile is created alongside its User and carries the public-facing
// portfolio identity.
type Profile struct {
	UserID       uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"user_id"`
	PictureURL   string        `gorm:"size:255" json:"picture_url"`
	CoverURL     string        `gorm:"size:255" json:"cover_url"`
	Bio          string        `gorm:"type:text" json:"bio"`
	ContactEmail string        `gorm:"size:255" json:"contact_email"`
	Phone        string        `gorm:"size:50" json:"phone"`
	SocialLinks  JSONStringMap `gorm:"type:jsonb;not null;default:'{}'" json:"social_links"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Settings is absent until the owner first writes it.
type Settings struct {
	ID          uuid.UUID     `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID      uuid.UUID     `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	ColorScheme JSONStringMap `gorm:"type:jsonb;not null;default:'{}'" json:"color_scheme"`
	TemplateID  string        `gorm:"size:50" json:"template_id"`
	Font        string        `gorm:"size:100" json:"font"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func (s *Settings) BeforeCreate(*gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// Template is an immutable catalog entry referenced by Settings.
type Template struct {
	ID     string `gorm:"size:50;primarykey" json:"id"`
	Name   string `gorm:"size:100;not null" json:"name"`
	Layout string `gorm:"size:50;not null" json:"layout"`
}
