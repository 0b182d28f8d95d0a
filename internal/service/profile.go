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

// ProfileService handles the public portfolio read and owner-only profile
// and settings writes.
type ProfileService struct {
	db *gorm.DB
}

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// GetPortfolio assembles the public portfolio for a user.
func (s *ProfileService) GetPortfolio(ctx context.Context, userID uuid.UUID) (*types.PortfolioView, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Internal(err)
	}

	view := &types.PortfolioView{
		User: types.PublicUser{
			ID:        user.ID,
			Name:      user.Name,
			CreatedAt: user.CreatedAt,
		},
	}

	db := s.db.WithContext(ctx)
	if err := db.First(&view.Profile, "user_id = ?", userID).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	var settings models.Settings
	err := db.First(&settings, "user_id = ?", userID).Error
	if err == nil {
		view.Settings = &settings
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&view.Projects).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := db.Where("user_id = ?", userID).Find(&view.Skills).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := db.Where("user_id = ?", userID).Order("start_date desc").Find(&view.Timeline).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := db.Where("user_id = ?", userID).Find(&view.Testimonials).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	if err := db.Where("user_id = ?", userID).Order("created_at desc").Find(&view.BlogPosts).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	return view, nil
}

// UpdateProfile applies a partial update to the principal's own profile.
// The owner id comes straight from the path, so the ownership comparison
// happens before any lookup.
func (s *ProfileService) UpdateProfile(ctx context.Context, principalID, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	if principalID != userID {
		return nil, apperr.Forbidden()
	}

	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("profile")
		}
		return nil, apperr.Internal(err)
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&profile).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	if err := s.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &profile, nil
}

// UpsertSettings writes settings for the principal, creating the row on
// first write.
func (s *ProfileService) UpsertSettings(ctx context.Context, principalID, userID uuid.UUID, req *types.UpsertSettingsRequest) (*models.Settings, error) {
	if principalID != userID {
		return nil, apperr.Forbidden()
	}

	var settings models.Settings
	err := s.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = models.Settings{
			UserID:      userID,
			ColorScheme: models.JSONStringMap{},
		}
		if req.ColorScheme != nil {
			settings.ColorScheme = models.JSONStringMap(*req.ColorScheme)
		}
		if req.TemplateID != nil {
			settings.TemplateID = *req.TemplateID
		}
		if req.Font != nil {
			settings.Font = *req.Font
		}
		if err := s.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, apperr.Internal(err)
		}
		return &settings, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(&settings).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	if err := s.db.WithContext(ctx).First(&settings, "user_id = ?", userID).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &settings, nil
}
