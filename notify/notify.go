package notify

import (
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/pollbox/pollbox/models"
)

// Outcome reports what happened to a notification attempt.
type Outcome string

const (
	// Delivered means the relay accepted the message.
	Delivered Outcome = "delivered"
	// Skipped means no credentials are configured; this is not an error.
	Skipped Outcome = "skipped"
	// Failed means delivery was attempted and did not succeed.
	Failed Outcome = "failed"
)

// Mailer delivers password-change notifications to one fixed recipient
// via an authenticated SMTP relay with STARTTLS.
type Mailer struct {
	host      string
	port      int
	username  string
	password  string
	recipient string
}

// NewMailer builds a Mailer. Empty host, username, or password leaves the
// mailer unconfigured; PasswordChanged then reports Skipped.
func NewMailer(host string, port int, username, password, recipient string) *Mailer {
	return &Mailer{
		host:      host,
		port:      port,
		username:  username,
		password:  password,
		recipient: recipient,
	}
}

// Configured reports whether relay credentials are present.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.username != "" && m.password != ""
}

// PasswordChanged sends the new password to the fixed recipient. Missing
// credentials are a non-fatal Skipped outcome. Delivery failure returns
// Failed with a NotifierError; callers surface it as a warning and never
// reverse the password change.
func (m *Mailer) PasswordChanged(newPassword string) (Outcome, error) {
	if !m.Configured() {
		return Skipped, nil
	}

	msg := mail.NewMsg()
	if err := msg.From(m.username); err != nil {
		return Failed, &models.NotifierError{Err: err}
	}
	if err := msg.To(m.recipient); err != nil {
		return Failed, &models.NotifierError{Err: err}
	}
	msg.Subject("統計App密碼更新")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("您的管理員密碼已更新為: %s", newPassword))

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return Failed, &models.NotifierError{Err: err}
	}
	if err := client.DialAndSend(msg); err != nil {
		return Failed, &models.NotifierError{Err: err}
	}
	return Delivered, nil
}
