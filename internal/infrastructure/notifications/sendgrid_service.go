package notifications

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/you/shopsvc/domain"
)

// SendgridServiceImpl implements domain.NotificationService
type SendgridServiceImpl struct {
	client *sendgrid.Client
	from   string
}

// NewSendgridService creates a new SendGrid notification service
func NewSendgridService(apiKey, from string) domain.NotificationService {
	var client *sendgrid.Client
	if apiKey != "" {
		client = sendgrid.NewSendClient(apiKey)
	}

	return &SendgridServiceImpl{
		client: client,
		from:   from,
	}
}

// SendEmail implements domain.NotificationService
func (s *SendgridServiceImpl) SendEmail(to, subject, htmlBody string) error {
	// If credentials are not configured, log instead of sending
	if s.client == nil {
		fmt.Printf("[MOCK EMAIL] To: %s, Subject: %s\n", to, subject)
		return nil
	}

	message := mail.NewSingleEmail(
		mail.NewEmail("", s.from),
		subject,
		mail.NewEmail("", to),
		"",
		htmlBody,
	)

	resp, err := s.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}

	return nil
}
