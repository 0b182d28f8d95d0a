package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/foliocraft/backend/internal/apperr"
	"github.com/foliocraft/backend/internal/models"
	"github.com/foliocraft/backend/internal/types"
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret string
	notifier  Notifier
}

func NewAuthService(db *gorm.DB, jwtSecret string, notifier Notifier) *AuthService {
	return &AuthService{
		db:        db,
		jwtSecret: jwtSecret,
		notifier:  notifier,
	}
}

// Register creates the User and its empty Profile as a single transaction
// and returns the user together with a signed token. Email uniqueness is
// case-insensitive; the stored form is lowercased.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, "", apperr.Conflict("email already registered")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.Profile{
			UserID:      user.ID,
			SocialLinks: models.JSONStringMap{},
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		// The uniqueness check above races with concurrent registrations;
		// the unique index is the arbiter.
		if strings.Contains(strings.ToLower(err.Error()), "unique") || strings.Contains(strings.ToLower(err.Error()), "duplicate") {
			return nil, "", apperr.Conflict("email already registered")
		}
		return nil, "", apperr.Internal(err)
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return &user, token, nil
}

// Login verifies the credential and returns the user with a fresh token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", apperr.InvalidCredentials()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", apperr.InvalidCredentials()
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", apperr.Internal(err)
	}

	return &user, token, nil
}

// RequestPasswordReset acknowledges a reset request. Delivery is handled by
// the notifier collaborator; whether the email exists is never revealed to
// the caller.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil
	}

	return s.notifier.SendPasswordReset(user.Email, user.Name)
}

func (s *AuthService) GenerateToken(userID uuid.UUID) (string, error) {
	claims := types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken checks signature and expiry and extracts the claims.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &types.TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, apperr.CredentialInvalid("invalid or expired token")
	}

	claims, ok := token.Claims.(*types.TokenClaims)
	if !ok || !token.Valid || claims.UserID == uuid.Nil {
		return nil, apperr.CredentialInvalid("invalid token claims")
	}

	return claims, nil
}

// GetUserByID resolves a token subject to a live account. A valid token for
// a deleted account is still an invalid credential.
func (s *AuthService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.CredentialInvalid("unknown account")
		}
		return nil, apperr.Internal(err)
	}
	return &user, nil
}
