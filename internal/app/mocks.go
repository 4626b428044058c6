package app

import (
	"techmista_backend/internal/email"
	"techmista_backend/internal/logger"
)

// MockEmailProvider is used when SMTP is not configured. It accepts every
// message and writes it to the log so local development still shows the
// reset links that would have been mailed out.
type MockEmailProvider struct{}

func (p *MockEmailProvider) Send(msg *email.Email) error {
	logger.Info("Mock email sent",
		"to", msg.To,
		"subject", msg.Subject,
	)
	logger.Debug("Mock email body", "body", msg.HTMLBody)
	return nil
}

func (p *MockEmailProvider) Validate() error { return nil }

func (p *MockEmailProvider) Close() error { return nil }
