package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/config"
	apperrors "github.com/Harekrushna7138/ticket-service-backend/internal/shared/errors"
	"github.com/Harekrushna7138/ticket-service-backend/internal/shared/services/markdown"
)

const SinkNameSMTP = "smtp"

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPConfigFrom adapts the email section of the service configuration.
func SMTPConfigFrom(cfg config.EmailConfig) SMTPConfig {
	return SMTPConfig{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		FromAddress: cfg.FromAddress,
		FromName:    cfg.FromName,
	}
}

// mailSender is the part of gomail.Dialer the sink needs.
type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSink delivers notifications as multipart mail: the markdown body as
// text/plain with a sanitized HTML alternative.
type SMTPSink struct {
	config   SMTPConfig
	sender   mailSender
	markdown markdown.MarkdownService
}

func NewSMTPSink(cfg SMTPConfig, md markdown.MarkdownService) *SMTPSink {
	return &SMTPSink{
		config:   cfg,
		sender:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		markdown: md,
	}
}

func (s *SMTPSink) Name() string {
	return SinkNameSMTP
}

func (s *SMTPSink) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewSinkError(SinkNameSMTP, to, err)
	}

	m, err := s.buildMessage(to, subject, body)
	if err != nil {
		return apperrors.NewSinkError(SinkNameSMTP, to, err)
	}

	if err := s.sender.DialAndSend(m); err != nil {
		return apperrors.NewSinkError(SinkNameSMTP, to, fmt.Errorf("failed to send email: %w", err))
	}
	return nil
}

func (s *SMTPSink) buildMessage(to, subject, body string) (*gomail.Message, error) {
	htmlBody, err := s.markdown.ToHTMLSanitized(body)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)
	return m, nil
}
