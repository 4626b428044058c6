package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPProvider delivers mail over SMTP via gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) *SMTPProvider {
	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}

	from := email.From
	if from == "" {
		from = p.config.FromEmail
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, p.config.FromName)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/html", email.HTMLBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) Validate() error {
	if p.config.Host == "" || p.config.Port == 0 {
		return fmt.Errorf("smtp host and port are required")
	}
	if p.config.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// Close is a no-op; gomail dials per message.
func (p *SMTPProvider) Close() error {
	return nil
}
