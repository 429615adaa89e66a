package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// ErrTransportDisabled is returned when no SMTP host is configured. The
// caller logs it and skips the send, it is never fatal.
var ErrTransportDisabled = errors.New("mail transport is not configured")

// DeliveryError is the per-message failure outcome. It never escapes as a
// panic and is never surfaced to the HTTP caller of a broadcast.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// Mailer sends one message per call. Implementations must be safe for
// concurrent use by many in-flight broadcast tasks.
type Mailer interface {
	Send(to, subject, body string) error
}

type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// SMTPMailer sends via a shared gomail dialer. The connection is established
// lazily per send, so a bad transport config surfaces as per-message
// DeliveryErrors rather than a startup crash.
type SMTPMailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg Config) *SMTPMailer {
	m := &SMTPMailer{cfg: cfg}
	if cfg.Host != "" {
		m.dialer = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	}
	return m
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.dialer == nil {
		return &DeliveryError{Recipient: to, Err: ErrTransportDisabled}
	}

	msg := gomail.NewMessage()
	from := m.cfg.FromEmail
	if m.cfg.FromName != "" {
		from = msg.FormatAddress(m.cfg.FromEmail, m.cfg.FromName)
	}
	msg.SetHeader("From", from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	return nil
}
