package service

import (
	"context"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"
)

type Service interface {
	// Submit validates the form and sends both mails: owner
	// notification first, then submitter confirmation. No mail is sent
	// when validation fails.
	Submit(ctx context.Context, req contact.SubmitRequest) error
}

type service struct {
	email email.EmailService
}

func NewService(emailService email.EmailService) Service {
	return &service{email: emailService}
}

func (s *service) Submit(ctx context.Context, req contact.SubmitRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}

	msg := email.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := s.email.SendContactNotification(ctx, msg); err != nil {
		return err
	}

	// The owner already has the message at this point; a failed
	// confirmation is logged but does not fail the submission.
	if err := s.email.SendContactConfirmation(ctx, msg); err != nil {
		logger.Error("contact confirmation send failed", err)
	}

	return nil
}
