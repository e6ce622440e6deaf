package email

import (
	"accountd/internal/core/domain/user"
	"context"
	"fmt"
	"net/smtp"
	"net/url"
	"time"
)

// SMTPSender delivers through a plain SMTP account (consumer mailbox or
// transactional provider endpoint, whichever the config points at).
type SMTPSender struct {
	host                 string
	port                 string
	username             string
	password             string
	passwordResetBaseURL url.URL
	now                  func() time.Time
}

func NewSMTPSender(
	host string,
	port string,
	username string,
	password string,
	passwordResetBaseURL url.URL,
	now func() time.Time,
) *SMTPSender {
	return &SMTPSender{
		host:                 host,
		port:                 port,
		username:             username,
		password:             password,
		passwordResetBaseURL: passwordResetBaseURL,
		now:                  now,
	}
}

func (s *SMTPSender) SendPasswordReset(ctx context.Context, u user.User, proof user.PasswordResetProof) error {
	link := passwordResetLink(s.passwordResetBaseURL, proof)
	body := passwordResetBody(u, link)

	msg := []byte(fmt.Sprintf(
		"To: %s\r\nFrom: %s\r\nSubject: %s\r\nDate: %s\r\n"+
			"Content-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		u.Email,
		s.username,
		passwordResetSubject,
		s.now().Format(time.RFC1123Z),
		body,
	))

	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	err := smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{string(u.Email)}, msg)
	if err != nil {
		return fmt.Errorf("could not send email via SMTP: %w", err)
	}
	return nil
}
