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

type SkillService struct {
	db *gorm.DB
}

func NewSkillService(db *gorm.DB) *SkillService {
	return &SkillService{db: db}
}

func (s *SkillService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Skill, error) {
	var skills []models.Skill
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&skills).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return skills, nil
}

func (s *SkillService) Create(ctx context.Context, principalID, ownerID uuid.UUID, req *types.CreateSkillRequest) (*models.Skill, error) {
	if principalID != ownerID {
		return nil, apperr.Forbidden()
	}

	skill := models.Skill{
		UserID:      ownerID,
		Name:        req.Name,
		Proficiency: *req.Proficiency,
	}
	if err := s.db.WithContext(ctx).Create(&skill).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &skill, nil
}

func (s *SkillService) Update(ctx context.Context, principalID, id uuid.UUID, req *types.UpdateSkillRequest) (*models.Skill, error) {
	skill, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if skill.UserID != principalID {
		return nil, apperr.Forbidden()
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(skill).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.get(ctx, id)
}

func (s *SkillService) Delete(ctx context.Context, principalID, id uuid.UUID) error {
	skill, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if skill.UserID != principalID {
		return apperr.Forbidden()
	}

	if err := s.db.WithContext(ctx).Delete(&models.Skill{}, "id = ?", id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *SkillService) get(ctx context.Context, id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	if err := s.db.WithContext(ctx).First(&skill, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("skill")
		}
		return nil, apperr.Internal(err)
	}
	return &skill, nil
}
