package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
)

type fakeEmailService struct {
	notifications   int
	confirmations   int
	notificationErr error
	confirmationErr error
	lastMessage     email.ContactMessage
}

func (f *fakeEmailService) SendContactNotification(ctx context.Context, msg email.ContactMessage) error {
	if f.notificationErr != nil {
		return f.notificationErr
	}
	f.notifications++
	f.lastMessage = msg
	return nil
}

func (f *fakeEmailService) SendContactConfirmation(ctx context.Context, msg email.ContactMessage) error {
	if f.confirmationErr != nil {
		return f.confirmationErr
	}
	f.confirmations++
	return nil
}

func TestSubmitSendsBothMails(t *testing.T) {
	mail := &fakeEmailService{}
	svc := NewService(mail)

	err := svc.Submit(context.Background(), contact.SubmitRequest{
		Name:    "  Ada  ",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "I have a question",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, mail.notifications)
	assert.Equal(t, 1, mail.confirmations)
	// Fields are trimmed before delivery.
	assert.Equal(t, "Ada", mail.lastMessage.Name)
}

func TestSubmitInvalidEmailSendsNothing(t *testing.T) {
	mail := &fakeEmailService{}
	svc := NewService(mail)

	err := svc.Submit(context.Background(), contact.SubmitRequest{
		Name:    "A",
		Email:   "bad",
		Subject: "S",
		Message: "M",
	})

	require.Error(t, err)
	assert.Zero(t, mail.notifications)
	assert.Zero(t, mail.confirmations)
}

func TestSubmitMissingFieldsSendsNothing(t *testing.T) {
	mail := &fakeEmailService{}
	svc := NewService(mail)

	err := svc.Submit(context.Background(), contact.SubmitRequest{
		Name:    "   ",
		Email:   "ada@example.com",
		Subject: "S",
		Message: "M",
	})

	require.Error(t, err)
	assert.Zero(t, mail.notifications)
}

func TestSubmitPropagatesMissingConfiguration(t *testing.T) {
	mail := &fakeEmailService{notificationErr: email.ErrNotConfigured}
	svc := NewService(mail)

	err := svc.Submit(context.Background(), contact.SubmitRequest{
		Name:    "A",
		Email:   "ada@example.com",
		Subject: "S",
		Message: "M",
	})

	assert.ErrorIs(t, err, email.ErrNotConfigured)
}

func TestSubmitConfirmationFailureStillSucceeds(t *testing.T) {
	mail := &fakeEmailService{confirmationErr: errors.New("mailbox full")}
	svc := NewService(mail)

	err := svc.Submit(context.Background(), contact.SubmitRequest{
		Name:    "A",
		Email:   "ada@example.com",
		Subject: "S",
		Message: "M",
	})

	// The owner got the message; the submitter's copy is best effort.
	require.NoError(t, err)
	assert.Equal(t, 1, mail.notifications)
}
