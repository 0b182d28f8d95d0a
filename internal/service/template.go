package service

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
)

const templateCacheKey = "templates"

// TemplateService serves the immutable template catalog. Entries never
// change after seeding, so reads go through an in-process cache.
type TemplateService struct {
	db    *gorm.DB
	cache *gocache.Cache
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{
		db:    db,
		cache: gocache.New(time.Hour, 2*time.Hour),
	}
}

func (s *TemplateService) List(ctx context.Context) ([]models.Template, error) {
	if cached, found := s.cache.Get(templateCacheKey); found {
		return cached.([]models.Template), nil
	}

	var templates []models.Template
	if err := s.db.WithContext(ctx).Order("id").Find(&templates).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	s.cache.Set(templateCacheKey, templates, gocache.DefaultExpiration)
	return templates, nil
}
