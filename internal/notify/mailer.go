package notify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/wneessen/go-mail"

	"portfolio-twin/internal/config"
	"portfolio-twin/internal/model"
)

// ErrMailNotConfigured is returned by Send when credentials or the recipient are missing.
var ErrMailNotConfigured = errors.New("mail credentials not configured")

type Mailer interface {
	Configured() bool
	Send(ctx context.Context, inquiry model.ContactInquiry) error
}

// SMTPMailer authenticates with PLAIN over TLS and sends one plain-text message per inquiry.
type SMTPMailer struct {
	cfg config.MailConfig
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	if cfg.From == "" {
		cfg.From = cfg.Username
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = 10
	}
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Configured() bool {
	return strings.TrimSpace(m.cfg.Host) != "" &&
		strings.TrimSpace(m.cfg.Username) != "" &&
		m.cfg.Password != "" &&
		strings.TrimSpace(m.cfg.To) != ""
}

func (m *SMTPMailer) Send(ctx context.Context, inquiry model.ContactInquiry) error {
	if !m.Configured() {
		return ErrMailNotConfigured
	}

	msg, err := m.buildMessage(inquiry)
	if err != nil {
		return err
	}

	opts := []mail.Option{
		mail.WithPort(m.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
		mail.WithTimeout(time.Duration(m.cfg.TimeoutSeconds) * time.Second),
	}
	if m.cfg.SSL {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	}

	client, err := mail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create smtp client failed: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send notification mail failed: %w", err)
	}
	return nil
}

func (m *SMTPMailer) buildMessage(inquiry model.ContactInquiry) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return nil, fmt.Errorf("set mail sender failed: %w", err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return nil, fmt.Errorf("set mail recipient failed: %w", err)
	}
	// a malformed visitor address only loses the Reply-To header
	_ = msg.ReplyTo(inquiry.Email)
	msg.Subject("New portfolio inquiry: " + inquiry.Subject)
	msg.SetBodyString(mail.TypeTextPlain, renderBody(inquiry))
	return msg, nil
}

func renderBody(inquiry model.ContactInquiry) string {
	var b strings.Builder
	b.WriteString("You have a new contact inquiry.\n\n")
	b.WriteString("Name: " + inquiry.DisplayName() + "\n")
	b.WriteString("Email: " + inquiry.Email + "\n")
	b.WriteString("Subject: " + inquiry.Subject + "\n\n")
	b.WriteString(inquiry.Message)
	b.WriteString("\n")
	return b.String()
}
