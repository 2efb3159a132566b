package services

import (
	"crypto/tls"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"

	"github.com/princeprakhar/portfolio-backend/internal/config"
	"github.com/princeprakhar/portfolio-backend/internal/models"
)

type EmailService struct {
	config *config.Config
}

func NewEmailService(config *config.Config) *EmailService {
	return &EmailService{config: config}
}

// Enabled reports whether SMTP is configured; without credentials the
// contact form still stores messages, it just stops notifying.
func (s *EmailService) Enabled() bool {
	return s.config.SMTPHost != "" && s.config.SMTPUsername != "" && s.config.OwnerEmail != ""
}

func (s *EmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.config.SMTPHost, s.config.SMTPPort, s.config.SMTPUsername, s.config.SMTPPassword)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: true}

	return d.DialAndSend(m)
}

// SendContactNotification forwards a stored contact message to the site
// owner.
func (s *EmailService) SendContactNotification(msg *models.ContactMessage) error {
	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf(`
		<h2>New Contact Message</h2>
		<p><strong>From:</strong> %s (%s)</p>
		<p><strong>Subject:</strong> %s</p>
		<p>%s</p>
	`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)

	return s.SendEmail(s.config.OwnerEmail, subject, body)
}
