package notifier

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Subject is the fixed subject line of the weekly report.
const Subject = "📊 Your Weekly Stock Picks (Indian Market)"

// Mailer sends a report body to a recipient. Satisfied by EmailNotifier and
// by test fakes.
type Mailer interface {
	Send(subject, body string) error
}

// EmailNotifier delivers reports over authenticated SMTP.
type EmailNotifier struct {
	From   string
	To     string
	dialer *gomail.Dialer
}

// NewEmailNotifier creates a notifier for the given SMTP relay and app
// credentials.
func NewEmailNotifier(host string, port int, username, password, to string) *EmailNotifier {
	return &EmailNotifier{
		From:   username,
		To:     to,
		dialer: gomail.NewDialer(host, port, username, password),
	}
}

// Send delivers one plain-text message. Auth and network failures surface
// as the returned error; the caller decides what to do with it.
func (e *EmailNotifier) Send(subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.From)
	m.SetHeader("To", e.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
