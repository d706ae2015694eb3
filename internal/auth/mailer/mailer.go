// Package mailer delivers the account lifecycle emails: address verification
// and password reset. Delivery is abstracted behind Sender so the service
// layer never knows which transport is in use.
package mailer

import (
	"context"
	"fmt"
)

// Sender is responsible for actually sending an email.
type Sender interface {
	Send(ctx context.Context, recipient, subject, body string) error
}

// Mailer composes the account emails and hands them to a Sender.
type Mailer struct {
	sender  Sender
	baseURL string
}

func New(sender Sender, baseURL string) *Mailer {
	return &Mailer{sender: sender, baseURL: baseURL}
}

func (m *Mailer) SendVerification(ctx context.Context, recipient, name, token string) error {
	subject := "Verify your TalentSift account"
	body := fmt.Sprintf(
		"Hi %s,\n\nConfirm your email address to activate your account:\n\n%s/verify-email?token=%s\n\nThis link expires in 24 hours. If you did not sign up, ignore this email.\n",
		name, m.baseURL, token,
	)
	return m.sender.Send(ctx, recipient, subject, body)
}

func (m *Mailer) SendPasswordReset(ctx context.Context, recipient, name, token string) error {
	subject := "Reset your TalentSift password"
	body := fmt.Sprintf(
		"Hi %s,\n\nYou requested a password reset. Choose a new password here:\n\n%s/reset-password?token=%s\n\nThis link expires in 1 hour. If you did not request a reset, ignore this email and your password stays unchanged.\n",
		name, m.baseURL, token,
	)
	return m.sender.Send(ctx, recipient, subject, body)
}
