package mocks

import "sync"

// MockNotificationService implements domain.NotificationService for testing.
// Sent mail is recorded under a mutex because callers fire it from
// goroutines.
type MockNotificationService struct {
	SendEmailFunc func(to, subject, htmlBody string) error

	mu   sync.Mutex
	sent []SentEmail
}

// SentEmail records one delivered message
type SentEmail struct {
	To      string
	Subject string
	Body    string
}

// NewMockNotificationService creates a new MockNotificationService with default behaviors
func NewMockNotificationService() *MockNotificationService {
	return &MockNotificationService{}
}

func (m *MockNotificationService) SendEmail(to, subject, htmlBody string) error {
	m.mu.Lock()
	m.sent = append(m.sent, SentEmail{To: to, Subject: subject, Body: htmlBody})
	m.mu.Unlock()

	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(to, subject, htmlBody)
	}
	return nil
}

// Sent returns a copy of all recorded emails
func (m *MockNotificationService) Sent() []SentEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SentEmail, len(m.sent))
	copy(out, m.sent)
	return out
}
