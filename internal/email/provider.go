package email

// Email is one outgoing message. From is optional; providers fall back to
// their configured sender address.
type Email struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
}

// Provider sends email. Delivery failures never roll back the business
// operation that triggered the send; callers log and continue.
type Provider interface {
	Send(email *Email) error
	Validate() error
	Close() error
}
