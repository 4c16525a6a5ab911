package email

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolio-backend/internal/config"
	"portfolio-backend/pkg/logger"
)

// ContactMessage is a validated contact form submission.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// EmailService delivers contact form mail: a notification to the site
// owner and a confirmation to the submitter.
type EmailService interface {
	SendContactNotification(ctx context.Context, msg ContactMessage) error
	SendContactConfirmation(ctx context.Context, msg ContactMessage) error
}

// ErrNotConfigured is returned when SMTP credentials are missing.
// The contact endpoint reports it as a configuration error, not a
// delivery failure.
var ErrNotConfigured = fmt.Errorf("email service is not configured")

type smtpEmailService struct {
	smtpAddr   string
	smtpHost   string
	smtpUser   string
	smtpPass   string
	smtpFrom   string
	ownerEmail string
	ownerName  string
}

func NewSMTPEmailService(cfg config.SMTPConfig, contact config.ContactConfig) EmailService {
	from := cfg.From
	if from == "" {
		from = cfg.User
	}
	return &smtpEmailService{
		smtpAddr:   cfg.Host + ":" + cfg.Port,
		smtpHost:   cfg.Host,
		smtpUser:   cfg.User,
		smtpPass:   cfg.Password,
		smtpFrom:   from,
		ownerEmail: contact.OwnerEmail,
		ownerName:  contact.OwnerName,
	}
}

func (s *smtpEmailService) configured() bool {
	return s.smtpUser != "" && s.smtpPass != "" && s.ownerEmail != ""
}

func (s *smtpEmailService) auth() smtp.Auth {
	return smtp.PlainAuth("", s.smtpUser, s.smtpPass, s.smtpHost)
}

// send builds an HTML mail with optional Reply-To and ships it.
func (s *smtpEmailService) send(to, replyTo, subject, htmlBody string) error {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", s.smtpFrom, to, subject)
	if replyTo != "" {
		headers += fmt.Sprintf("Reply-To: %s\r\n", replyTo)
	}
	headers += "MIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n"

	msg := []byte(headers + "\r\n" + htmlBody)
	return smtp.SendMail(s.smtpAddr, s.auth(), s.smtpFrom, []string{to}, msg)
}

// SendContactNotification mails the submission to the site owner with
// Reply-To set to the submitter so the owner can answer directly.
func (s *smtpEmailService) SendContactNotification(ctx context.Context, msg ContactMessage) error {
	if !s.configured() {
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("[Portfolio Contact] %s", msg.Subject)
	body := renderOwnerNotification(msg)

	if err := s.send(s.ownerEmail, msg.Email, subject, body); err != nil {
		logger.Error("failed to send contact notification", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// SendContactConfirmation mails an acknowledgement to the submitter.
func (s *smtpEmailService) SendContactConfirmation(ctx context.Context, msg ContactMessage) error {
	if !s.configured() {
		return ErrNotConfigured
	}

	subject := fmt.Sprintf("Thanks for reaching out - %s", s.ownerName)
	body := renderSubmitterConfirmation(msg, s.ownerName)

	if err := s.send(msg.Email, "", subject, body); err != nil {
		logger.Error("failed to send contact confirmation", err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
