package services

import "context"

// EmailService определяет операцию отправки письма с HTML-содержимым.
type EmailService interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}
