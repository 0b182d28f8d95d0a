package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/types"
)

// TimelineService handles experience/education entries. end_date before
// start_date is accepted as submitted; ordering is not validated.
type TimelineService struct {
	db *gorm.DB
}

func NewTimelineService(db *gorm.DB) *TimelineService {
	return &TimelineService{db: db}
}

func (s *TimelineService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.TimelineEntry, error) {
	var entries []models.TimelineEntry
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("start_date desc").Find(&entries).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return entries, nil
}

func (s *TimelineService) Create(ctx context.Context, principalID, ownerID uuid.UUID, req *types.CreateTimelineEntryRequest) (*models.TimelineEntry, error) {
	if principalID != ownerID {
		return nil, apperr.Forbidden()
	}

	entry := models.TimelineEntry{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate.Time,
	}
	if req.EndDate != nil {
		end := req.EndDate.Time
		entry.EndDate = &end
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &entry, nil
}

func (s *TimelineService) Update(ctx context.Context, principalID, id uuid.UUID, req *types.UpdateTimelineEntryRequest) (*models.TimelineEntry, error) {
	entry, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.UserID != principalID {
		return nil, apperr.Forbidden()
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(entry).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.get(ctx, id)
}

func (s *TimelineService) Delete(ctx context.Context, principalID, id uuid.UUID) error {
	entry, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if entry.UserID != principalID {
		return apperr.Forbidden()
	}

	if err := s.db.WithContext(ctx).Delete(&models.TimelineEntry{}, "id = ?", id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *TimelineService) get(ctx context.Context, id uuid.UUID) (*models.TimelineEntry, error) {
	var entry models.TimelineEntry
	if err := s.db.WithContext(ctx).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("timeline entry")
		}
		return nil, apperr.Internal(err)
	}
	return &entry, nil
}
