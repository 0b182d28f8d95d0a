package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
)

// AnalyticsService maintains the one-per-user counters row. The row is
// created lazily on first read; the unique index on user_id arbitrates
// concurrent first reads, with the loser re-reading instead of erroring.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Get returns the owner's analytics snapshot, creating a zeroed row on
// first read.
func (s *AnalyticsService) Get(ctx context.Context, principalID, userID uuid.UUID) (*models.Analytics, error) {
	if principalID != userID {
		return nil, apperr.Forbidden()
	}
	return s.ensure(s.db.WithContext(ctx), userID)
}

// RecordVisit bumps the visit counter with a single update expression.
func (s *AnalyticsService) RecordVisit(ctx context.Context, userID uuid.UUID) error {
	db := s.db.WithContext(ctx)
	if _, err := s.ensure(db, userID); err != nil {
		return err
	}
	err := db.Model(&models.Analytics{}).
		Where("user_id = ?", userID).
		Update("visit_count", gorm.Expr("visit_count + 1")).Error
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// RecordProjectView bumps the per-project view counter inside a
// transaction; the JSON column cannot be patched with a plain expression
// across both supported stores.
func (s *AnalyticsService) RecordProjectView(ctx context.Context, ownerID, projectID uuid.UUID) error {
	return s.bumpMap(ctx, ownerID, "popular_projects", projectID.String())
}

// RecordInteraction bumps a named counter in the freeform interaction map.
func (s *AnalyticsService) RecordInteraction(ctx context.Context, userID uuid.UUID, kind string) error {
	return s.bumpMap(ctx, userID, "interactions", kind)
}

func (s *AnalyticsService) bumpMap(ctx context.Context, userID uuid.UUID, column, key string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		analytics, err := s.ensure(tx, userID)
		if err != nil {
			return err
		}

		var m models.JSONValueMap
		switch column {
		case "popular_projects":
			m = analytics.PopularProjects
		default:
			m = analytics.Interactions
		}
		if m == nil {
			m = models.JSONValueMap{}
		}
		m[key] = asCount(m[key]) + 1

		return tx.Model(&models.Analytics{}).
			Where("user_id = ?", userID).
			Update(column, m).Error
	})
	if err != nil {
		if _, ok := apperr.As(err); ok {
			return err
		}
		return apperr.Internal(err)
	}
	return nil
}

// ensure returns the analytics row for the user, creating it with zeroed
// counters if absent. ON CONFLICT DO NOTHING keeps the creation
// exactly-once; if another request won the insert, the re-read picks up
// its row.
func (s *AnalyticsService) ensure(db *gorm.DB, userID uuid.UUID) (*models.Analytics, error) {
	var analytics models.Analytics
	err := db.First(&analytics, "user_id = ?", userID).Error
	if err == nil {
		return &analytics, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	fresh := models.Analytics{
		UserID:          userID,
		PopularProjects: models.JSONValueMap{},
		Interactions:    models.JSONValueMap{},
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&fresh).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	if err := db.First(&analytics, "user_id = ?", userID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &analytics, nil
}

// asCount reads a counter back out of a JSON map, where decoded numbers
// arrive as float64.
func asCount(v interface{}) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	default:
		return 0
	}
}
