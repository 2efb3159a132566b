package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
	"github.com/princeprakhar/portfolio-backend/pkg/logger"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
)

// AuthService authenticates the single site owner for the admin panel.
// There is no public registration.
type AuthService struct {
	db        *gorm.DB
	jwtSecret string
}

func NewAuthService(db *gorm.DB, jwtSecret string) *AuthService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &AuthService{db: db, jwtSecret: jwtSecret}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

type SessionResponse struct {
	Username  string `json:"username"`
	ExpiresAt int64  `json:"expires_at"`
}

// EnsureAdmin creates the owner account from configuration on first start.
// An existing account is never overwritten here; passwords change only
// through ChangePassword.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.AdminUser{}).Count(&count).Error; err != nil {
		return fmt.Errorf("%w: failed to check admin accounts: %v", ErrDatabaseQuery, err)
	}
	if count > 0 {
		return nil
	}

	admin := models.AdminUser{Username: username}
	if err := admin.SetPassword(password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("%w: failed to create admin account: %v", ErrDatabaseQuery, err)
	}

	logger.Info("Created admin account: " + username)
	return nil
}

// Login verifies the credentials and returns a signed session token plus its
// expiry.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, time.Time, error) {
	var admin models.AdminUser
	err := s.db.WithContext(ctx).First(&admin, "username = ?", req.Username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		return "", time.Time{}, fmt.Errorf("%w: failed to fetch admin account: %v", ErrDatabaseQuery, err)
	}

	if !admin.CheckPassword(req.Password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, expiresAt, err := utils.GenerateSessionToken(admin.ID, admin.Username, s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// ValidateSession checks a session token and returns the session details.
func (s *AuthService) ValidateSession(token string) (*SessionResponse, error) {
	claims, err := utils.ValidateSessionToken(token, s.jwtSecret)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	return &SessionResponse{
		Username:  claims.Username,
		ExpiresAt: claims.ExpiresAt.Unix(),
	}, nil
}

func (s *AuthService) ChangePassword(ctx context.Context, username string, req ChangePasswordRequest) error {
	if !utils.IsValidPassword(req.NewPassword) {
		return ErrWeakPassword
	}

	var admin models.AdminUser
	err := s.db.WithContext(ctx).First(&admin, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("%w: failed to fetch admin account: %v", ErrDatabaseQuery, err)
	}

	if !admin.CheckPassword(req.CurrentPassword) {
		return ErrInvalidCredentials
	}

	if err := admin.SetPassword(req.NewPassword); err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}
	if err := s.db.WithContext(ctx).Save(&admin).Error; err != nil {
		return fmt.Errorf("%w: failed to update admin password: %v", ErrDatabaseQuery, err)
	}
	return nil
}
