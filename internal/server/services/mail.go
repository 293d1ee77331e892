package services

import (
	"context"
	"errors"

	"github.com/resend/resend-go/v2"

	"github.com/dkravets/libshelf/internal/server/config"
)

// MailService sends outbound mail through Resend. The send function is a
// seam so handler tests do not hit the network.
type MailService struct {
	from      string
	recipient string
	send      func(ctx context.Context, params *resend.SendEmailRequest) (string, error)
}

// NewMailService constructs a MailService from server config. It returns an
// error when mail settings are incomplete, so a misconfigured server fails
// at startup rather than on the first send.
func NewMailService(cfg *config.Config) (*MailService, error) {
	if cfg.ResendAPIKey == "" {
		return nil, errors.New("mail: RESEND_API_KEY is not configured")
	}
	if cfg.MailFrom == "" {
		return nil, errors.New("mail: MAIL_FROM is not configured")
	}

	client := resend.NewClient(cfg.ResendAPIKey)
	return &MailService{
		from:      cfg.MailFrom,
		recipient: cfg.TestMailRecipient,
		send: func(ctx context.Context, params *resend.SendEmailRequest) (string, error) {
			sent, err := client.Emails.SendWithContext(ctx, params)
			if err != nil {
				return "", err
			}
			return sent.Id, nil
		},
	}, nil
}

// DisabledMailService stands in when outbound mail is not configured; every
// send fails with a clear error instead of a nil-pointer panic.
type DisabledMailService struct{}

func (DisabledMailService) SendTestMail(ctx context.Context) (string, error) {
	return "", errors.New("mail is not configured")
}

// Send delivers a plain-text email to the given recipients.
func (s *MailService) Send(ctx context.Context, subject, body string, to []string) (string, error) {
	return s.send(ctx, &resend.SendEmailRequest{
		From:    s.from,
		To:      to,
		Subject: subject,
		Text:    body,
	})
}

// SendTestMail sends the fixed smoke-test email to the configured recipient.
func (s *MailService) SendTestMail(ctx context.Context) (string, error) {
	return s.Send(ctx,
		"Hello from LibShelf",
		"This is a test email sent from the library service.",
		[]string{s.recipient})
}
