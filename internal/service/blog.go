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

type BlogService struct {
	db *gorm.DB
}

func NewBlogService(db *gorm.DB) *BlogService {
	return &BlogService{db: db}
}

func (s *BlogService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&posts).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return posts, nil
}

func (s *BlogService) Create(ctx context.Context, principalID, ownerID uuid.UUID, req *types.CreateBlogPostRequest) (*models.BlogPost, error) {
	if principalID != ownerID {
		return nil, apperr.Forbidden()
	}

	post := models.BlogPost{
		UserID:  ownerID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &post, nil
}

func (s *BlogService) Update(ctx context.Context, principalID, id uuid.UUID, req *types.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if post.UserID != principalID {
		return nil, apperr.Forbidden()
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(post).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.get(ctx, id)
}

func (s *BlogService) Delete(ctx context.Context, principalID, id uuid.UUID) error {
	post, err := s.get(ctx, id)
	if err != nil {
		return err
	}
	if post.UserID != principalID {
		return apperr.Forbidden()
	}

	if err := s.db.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", id).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *BlogService) get(ctx context.Context, id uuid.UUID) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("blog post")
		}
		return nil, apperr.Internal(err)
	}
	return &post, nil
}
