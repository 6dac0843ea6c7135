// Package email реализует отправку почты через SMTP.
package email

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"gopostboard/internal/config"
	"gopostboard/internal/ports/services"
	"gopostboard/pkg/logger"
)

const errMsgSendFailed = "failed to send email"

// ServiceSMTP реализует интерфейс EmailService поверх net/smtp.
type ServiceSMTP struct {
	addr string
	auth smtp.Auth
	from string
}

// NewSMTP создает новый почтовый сервис из конфигурации.
// При пустом имени пользователя аутентификация не используется
// (локальный relay в окружении разработки).
func NewSMTP(cfg *config.SMTPConfig) services.EmailService {
	var auth smtp.Auth
	if cfg.Username != "" {
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}

	return &ServiceSMTP{
		addr: cfg.GetAddress(),
		auth: auth,
		from: cfg.From,
	}
}

// Send отправляет письмо с HTML-содержимым указанному получателю.
func (s *ServiceSMTP) Send(ctx context.Context, to, subject, htmlBody string) error {
	log := logger.Log(ctx).With(zap.String("service", "email"), zap.String("to", to))

	msg := []byte("From: " + s.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		htmlBody + "\r\n")

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, msg); err != nil {
		log.Error(ctx, errMsgSendFailed, zap.Error(err))
		return fmt.Errorf("%s: %w", errMsgSendFailed, err)
	}

	log.Debug(ctx, "email sent", zap.String("subject", subject))
	return nil
}
