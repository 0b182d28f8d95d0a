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

type TestimonialService struct {
	db *gorm.DB
}

func NewTestimonialService(db *gorm.DB) *TestimonialService {
	return &TestimonialService{db: db}
}

func (s *TestimonialService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&testimonials).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return testimonials, nil
}

func (s *TestimonialService) Create(ctx context.Context, principalID, ownerID uuid.UUID, req *types.CreateTestimonialRequest) (*models.Testimonial, error) {
	if principalID != ownerID {
		return nil, apperr.Forbidden()
	}

	testimonial := models.Testimonial{
		UserID:     ownerID,
		ClientName: req.ClientName,
		Feedback:   req.Feedback,
	}
	if err := s.db.WithContext(ctx).Create(&testimonial).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &testimonial, nil
}

func (s *TestimonialService) Update(ctx context.Context, principalID, id uuid.UUID, req *types.UpdateTestimonialRequest) (*models.Testimonial, error) {
	testimonial, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if testimonial.UserID != principalID {
		return nil, apperr.Forbidden()
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(testimonial).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.get(ctx, id)
}

func (s *TestimonialService) Delete(ctx context.Context, principalID, id uuid.UUID) error {
	testimonial, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if testimonial.UserID != principalID {
		return apperr.Forbidden()
	}

	if err := s.db.WithContext(ctx).Delete(&models.Testimonial{}, "id = ?", id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *TestimonialService) get(ctx context.Context, id uuid.UUID) (*models.Testimonial, error) {
	var testimonial models.Testimonial
	if err := s.db.WithContext(ctx).First(&testimonial, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("testimonial")
		}
		return nil, apperr.Internal(err)
	}
	return &testimonial, nil
}
