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

// ProjectService handles project CRUD and the visitor-writable comments
// hanging off each project.
type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

func (s *ProjectService) ListByOwner(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at desc").Find(&projects).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return projects, nil
}

func (s *ProjectService) Create(ctx context.Context, principalID, ownerID uuid.UUID, req *types.CreateProjectRequest) (*models.Project, error) {
	if principalID != ownerID {
		return nil, apperr.Forbidden()
	}

	project := models.Project{
		UserID:      ownerID,
		Title:       req.Title,
		Description: req.Description,
		Images:      models.JSONStringArray(req.Images),
		ProjectURL:  req.ProjectURL,
	}
	if project.Images == nil {
		project.Images = models.JSONStringArray{}
	}
	if err := s.db.WithContext(ctx).Create(&project).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &project, nil
}

func (s *ProjectService) Get(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.WithContext(ctx).First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("project")
		}
		return nil, apperr.Internal(err)
	}
	return &project, nil
}

// Update applies a partial update. Existence is checked before ownership so
// the two failure modes stay distinguishable. Concurrent updates to the
// same project are last-write-wins.
func (s *ProjectService) Update(ctx context.Context, principalID, id uuid.UUID, req *types.UpdateProjectRequest) (*models.Project, error) {
	project, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if project.UserID != principalID {
		return nil, apperr.Forbidden()
	}

	updates := req.Updates()
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(project).Updates(updates).Error; err != nil {
			return nil, apperr.Internal(err)
		}
	}

	return s.Get(ctx, id)
}

// Delete removes a project and its comments in one transaction. The store
// is not assumed to cascade.
func (s *ProjectService) Delete(ctx context.Context, principalID, id uuid.UUID) error {
	project, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if project.UserID != principalID {
		return apperr.Forbidden()
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("project_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Project{}, "id = ?", id).Error
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func (s *ProjectService) ListComments(ctx context.Context, projectID uuid.UUID) ([]models.Comment, error) {
	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	var comments []models.Comment
	if err := s.db.WithContext(ctx).Where("project_id = ?", projectID).Order("created_at desc").Find(&comments).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return comments, nil
}

// CreateComment is open to any caller; only project existence is checked.
func (s *ProjectService) CreateComment(ctx context.Context, projectID uuid.UUID, req *types.CreateCommentRequest) (*models.Comment, error) {
	if _, err := s.Get(ctx, projectID); err != nil {
		return nil, err
	}

	comment := models.Comment{
		ProjectID:   projectID,
		VisitorName: req.VisitorName,
		Content:     req.Content,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return &comment, nil
}
