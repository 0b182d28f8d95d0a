package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/types"
)

// MessageService stores visitor contact messages and counts them against
// the target user's analytics.
type MessageService struct {
	db        *gorm.DB
	analytics *AnalyticsService
}

func NewMessageService(db *gorm.DB, analytics *AnalyticsService) *MessageService {
	return &MessageService{db: db, analytics: analytics}
}

// Create is open to any caller; only target existence is checked.
func (s *MessageService) Create(ctx context.Context, targetUserID uuid.UUID, req *types.ContactRequest) (*models.VisitorMessage, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", targetUserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Internal(err)
	}

	message := models.VisitorMessage{
		UserID:       targetUserID,
		VisitorEmail: req.VisitorEmail,
		Message:      req.Message,
	}
	if err := s.db.WithContext(ctx).Create(&message).Error; err != nil {
		return nil, apperr.Internal(err)
	}

	// The message is stored either way; a failed counter bump is not worth
	// a visitor-facing error.
	if err := s.analytics.RecordInteraction(ctx, targetUserID, "contact"); err != nil {
		log.Printf("contact counter increment failed for user %s: %v", targetUserID, err)
	}

	return &message, nil
}

// ListByOwner returns the messages sent to the principal.
func (s *MessageService) ListByOwner(ctx context.Context, principalID, userID uuid.UUID) ([]models.VisitorMessage, error) {
	if principalID != userID {
		return nil, apperr.Forbidden()
	}

	var messages []models.VisitorMessage
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Order("sent_at desc").Find(&messages).Error; err != nil {
		return nil, apperr.Internal(err)
	}
	return messages, nil
}
