package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/princeprakhar/portfolio-backend/internal/models"
	"github.com/princeprakhar/portfolio-backend/internal/utils"
	"github.com/princeprakhar/portfolio-backend/pkg/logger"
)

var (
	ErrInvalidContact  = errors.New("invalid contact message")
	ErrMessageNotFound = errors.New("contact message not found")
)

type ContactService struct {
	db           *gorm.DB
	emailService *EmailService
}

func NewContactService(db *gorm.DB, emailService *EmailService) *ContactService {
	if db == nil {
		panic("database connection cannot be nil")
	}
	return &ContactService{db: db, emailService: emailService}
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"max=255"`
	Message string `json:"message" binding:"required,min=1,max=5000"`
}

// SubmitMessage stores the message and notifies the owner by email. The
// notification is best-effort: a dead SMTP server must not lose the message
// or fail the visitor's request.
func (s *ContactService) SubmitMessage(ctx context.Context, req ContactRequest) (*models.ContactMessage, error) {
	if !utils.IsValidEmail(req.Email) {
		return nil, fmt.Errorf("%w: invalid email address", ErrInvalidContact)
	}

	msg := models.ContactMessage{
		Name:    utils.SanitizeString(req.Name),
		Email:   utils.SanitizeString(req.Email),
		Subject: utils.SanitizeString(req.Subject),
		Message: utils.SanitizeString(req.Message),
	}

	if err := s.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to store contact message: %v", ErrDatabaseQuery, err)
	}

	if s.emailService != nil && s.emailService.Enabled() {
		go func(m models.ContactMessage) {
			if err := s.emailService.SendContactNotification(&m); err != nil {
				logger.Error("Failed to send contact notification", err)
			}
		}(msg)
	}

	return &msg, nil
}

func (s *ContactService) GetMessages(ctx context.Context) ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch contact messages: %v", ErrDatabaseQuery, err)
	}
	return messages, nil
}

func (s *ContactService) DeleteMessage(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.ContactMessage{}, id)
	if result.Error != nil {
		return fmt.Errorf("%w: failed to delete contact message: %v", ErrDatabaseQuery, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
