package mailer

import (
	"context"
	"sync"
)

// Email is a captured message, used by tests to assert on delivery.
type Email struct {
	Recipient string
	Subject   string
	Body      string
}

// MemorySender is a Sender that stores emails in memory.
type MemorySender struct {
	mu     sync.Mutex
	emails []Email
}

func NewMemorySender() *MemorySender {
	return &MemorySender{}
}

func (s *MemorySender) Send(_ context.Context, recipient, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails = append(s.emails, Email{Recipient: recipient, Subject: subject, Body: body})
	return nil
}

// Emails returns a copy of every captured email in send order.
func (s *MemorySender) Emails() []Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Email, len(s.emails))
	copy(out, s.emails)
	return out
}

// Last returns the most recently captured email, or false when none exist.
func (s *MemorySender) Last() (Email, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.emails) == 0 {
		return Email{}, false
	}
	return s.emails[len(s.emails)-1], true
}
